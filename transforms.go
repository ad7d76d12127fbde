package aes128

import "github.com/opd-ai/go-aes128/internal/gf256"

// The round transforms take and return a State by value. None of them
// touches its argument, so a caller can never observe a half-updated block.

// mixMatrix is the fixed MixColumns matrix of FIPS-197 §5.1.3.
var mixMatrix = [4][4]byte{
	{0x02, 0x03, 0x01, 0x01},
	{0x01, 0x02, 0x03, 0x01},
	{0x01, 0x01, 0x02, 0x03},
	{0x03, 0x01, 0x01, 0x02},
}

// SubBytes replaces every byte of s with its S-Box substitution.
func SubBytes(s State) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = SBox(s[r][c])
		}
	}
	return out
}

// ShiftRows cyclically shifts row r of s by r positions so that the byte at
// column c is taken from column (c+r) mod 4. Row 0 is unchanged.
func ShiftRows(s State) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = s[r][(c+r)%4]
		}
	}
	return out
}

// MixColumns multiplies every column of s by mixMatrix over GF(2^8).
func MixColumns(s State) State {
	var out State
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var v byte
			for k := 0; k < 4; k++ {
				v ^= gf256.Mul(mixMatrix[r][k], s[k][c])
			}
			out[r][c] = v
		}
	}
	return out
}

// AddRoundKey XORs s with roundKey. Applying it twice with the same key is
// the identity.
func AddRoundKey(s, roundKey State) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = s[r][c] ^ roundKey[r][c]
		}
	}
	return out
}

package aes128

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// State is the 4x4 byte matrix a block is transformed in, indexed
// [row][column].
//
// Block bytes fill the matrix column by column: byte b lives at row b%4,
// column b/4. Every transform in this package agrees on that layout.
type State [4][4]byte

// StateFromBytes loads a 16-byte block into a State.
func StateFromBytes(block [BlockSize]byte) State {
	var s State
	for b := 0; b < BlockSize; b++ {
		s[b%4][b/4] = block[b]
	}
	return s
}

// Bytes serializes s back into block order.
func (s State) Bytes() [BlockSize]byte {
	var block [BlockSize]byte
	for b := 0; b < BlockSize; b++ {
		block[b] = s[b%4][b/4]
	}
	return block
}

// Column returns column c as a big-endian word, row 0 in the most
// significant byte.
func (s State) Column(c int) uint32 {
	return uint32(s[0][c])<<24 | uint32(s[1][c])<<16 |
		uint32(s[2][c])<<8 | uint32(s[3][c])
}

// String renders the state in block order as hex.
func (s State) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}

// Matrix renders the state as four rows of hex bytes, the layout FIPS-197
// uses in its worked examples.
func (s State) Matrix() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%02x %02x %02x %02x", s[r][0], s[r][1], s[r][2], s[r][3])
	}
	return sb.String()
}

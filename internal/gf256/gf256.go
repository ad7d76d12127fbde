// Package gf256 implements arithmetic in GF(2^8) with the AES reduction
// polynomial x^8 + x^4 + x^3 + x + 1 (0x11B).
package gf256

// Poly is the low byte of the AES field polynomial; the x^8 term is implied.
const Poly = 0x1b

// Add returns a + b in GF(2^8).
func Add(a, b byte) byte {
	return a ^ b
}

// Mul returns the product of a and b in GF(2^8) using the shift-and-add
// (Russian peasant) method with reduction after every shift.
func Mul(a, b byte) byte {
	var p byte

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= Poly
		}
		b >>= 1
	}

	return p
}

// Inverse returns the multiplicative inverse of a. Zero has no inverse and
// maps to zero, the convention the S-Box construction relies on.
//
// Every non-zero element satisfies a^255 = 1, so a^-1 = a^254.
func Inverse(a byte) byte {
	if a == 0 {
		return 0
	}

	result := byte(1)
	base := a
	for e := 254; e > 0; e >>= 1 {
		if e&1 != 0 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
	}

	return result
}

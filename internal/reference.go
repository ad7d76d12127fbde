package internal

import (
	"crypto/aes"
	"crypto/cipher"
)

// Reference wraps the standard library AES implementation. It is used as an
// independent oracle when checking the pure-Go cipher.
type Reference struct {
	block cipher.Block
}

// NewReference creates a reference cipher for the given key.
// Key must be 16, 24, or 32 bytes.
func NewReference(key []byte) (*Reference, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Reference{block: block}, nil
}

// Encrypt encrypts a single 16-byte block.
func (r *Reference) Encrypt(plaintext [aes.BlockSize]byte) [aes.BlockSize]byte {
	var out [aes.BlockSize]byte
	r.block.Encrypt(out[:], plaintext[:])
	return out
}

// EncryptBlocks encrypts each 16-byte block of src independently.
// Both dst and src must be multiples of 16 bytes.
func (r *Reference) EncryptBlocks(dst, src []byte) {
	if len(src)%aes.BlockSize != 0 {
		panic("reference: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("reference: output buffer too small")
	}

	for i := 0; i < len(src); i += aes.BlockSize {
		r.block.Encrypt(dst[i:i+aes.BlockSize], src[i:i+aes.BlockSize])
	}
}

// Package aes128 provides a pure-Go implementation of the AES-128 block
// cipher's forward direction as specified in NIST FIPS-197.
//
// The package exposes the two building blocks higher layers (modes of
// operation, AEAD constructions, protocols) are assembled from: key
// expansion and single-block encryption. Both are pure functions; nothing is
// shared between calls except the read-only constant tables, so any number
// of goroutines may encrypt concurrently.
//
// Example usage:
//
//	rk, err := aes128.ExpandKey(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ciphertext := aes128.EncryptBlock(rk, plaintext)
//
// or, holding the expanded key in a Block:
//
//	block, err := aes128.New(aes128.Config{Key: key})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	block.Encrypt(dst, src)
//
// The implementation follows FIPS-197 byte for byte and makes no
// attempt at constant-time execution. It must not be used where timing side
// channels matter.
package aes128

import (
	"context"

	"github.com/btcsuite/btclog/v2"
	"github.com/opd-ai/go-aes128/internal"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// KeySize is the AES-128 key size in bytes.
	KeySize = 16

	// Rounds is the number of cipher rounds (Nr) for AES-128.
	Rounds = 10
)

// Config specifies the configuration for a Block.
type Config struct {
	// Key is the cipher key. Must be exactly KeySize bytes.
	Key []byte

	// Observer, if set, is notified after every round of every block the
	// Block encrypts. It must be safe for concurrent use if the Block is.
	Observer RoundObserver
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Key) != KeySize {
		return KeySizeError(len(c.Key))
	}

	return nil
}

// Block holds an expanded key. It is immutable after New and safe for
// concurrent use.
type Block struct {
	rk       RoundKeySchedule
	observer RoundObserver
}

// New expands the configured key and returns a Block ready to encrypt.
func New(config Config) (*Block, error) {
	rk, err := ExpandKey(config.Key)
	if err != nil {
		return nil, err
	}

	b := &Block{
		rk:       rk,
		observer: config.Observer,
	}

	if debugEnabled() {
		fp := b.Fingerprint()
		log.DebugS(context.Background(), "Expanded key schedule",
			btclog.Hex("schedule_fp", fp[:]))
	}

	return b, nil
}

// BlockSize returns the cipher's block size.
func (b *Block) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst. dst and src must
// overlap entirely or not at all.
func (b *Block) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}

	var in [BlockSize]byte
	copy(in[:], src)
	out := encrypt(&b.rk, in, b.observer)
	copy(dst, out[:])
}

// EncryptBlock encrypts a single block.
func (b *Block) EncryptBlock(plaintext [BlockSize]byte) [BlockSize]byte {
	return encrypt(&b.rk, plaintext, b.observer)
}

// Schedule returns a copy of the expanded key.
func (b *Block) Schedule() RoundKeySchedule {
	return b.rk
}

// Fingerprint identifies the expanded key without revealing it. Two Blocks
// share a fingerprint exactly when they were built from the same key.
func (b *Block) Fingerprint() [internal.FingerprintSize]byte {
	return internal.ScheduleFingerprint(b.rk.Bytes())
}

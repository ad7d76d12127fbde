package internal

import (
	"errors"

	"golang.org/x/crypto/argon2"
)

// KDFConfig specifies Argon2id parameters for passphrase keys.
type KDFConfig struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory in KiB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output length in bytes
}

// DefaultKDFConfig returns the RFC 9106 second recommended Argon2id
// parameter set, sized for an AES-128 key.
func DefaultKDFConfig() KDFConfig {
	return KDFConfig{
		Time:    3,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  16,
	}
}

// DeriveKey stretches a passphrase into a cipher key with Argon2id.
func DeriveKey(passphrase, salt []byte, config KDFConfig) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, errors.New("kdf: passphrase must not be empty")
	}
	if len(salt) < 8 {
		return nil, errors.New("kdf: salt must be at least 8 bytes")
	}
	if config.Time == 0 || config.Threads == 0 || config.KeyLen == 0 {
		return nil, errors.New("kdf: time, threads and key length must be non-zero")
	}

	return argon2.IDKey(
		passphrase,
		salt,
		config.Time,
		config.Memory,
		config.Threads,
		config.KeyLen,
	), nil
}

package aes128

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// TestVector represents a single known-answer test for AES-128 encryption.
type TestVector struct {
	Name       string `json:"name"`
	Source     string `json:"source,omitempty"`
	Key        string `json:"key"`        // Hex-encoded 16-byte key
	Plaintext  string `json:"plaintext"`  // Hex-encoded 16-byte block
	Ciphertext string `json:"ciphertext"` // Hex-encoded expected block
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
//
// Exported so external validation tools can run the same vectors.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetKey returns the decoded key bytes. The length is not checked so that
// vectors can exercise the key-length error path.
func (tv *TestVector) GetKey() ([]byte, error) {
	key, err := hex.DecodeString(tv.Key)
	if err != nil {
		return nil, fmt.Errorf("invalid key hex: %w", err)
	}
	return key, nil
}

// GetPlaintext returns the decoded plaintext block.
func (tv *TestVector) GetPlaintext() ([BlockSize]byte, error) {
	return decodeBlock("plaintext", tv.Plaintext)
}

// GetCiphertext returns the decoded expected ciphertext block.
func (tv *TestVector) GetCiphertext() ([BlockSize]byte, error) {
	return decodeBlock("ciphertext", tv.Ciphertext)
}

func decodeBlock(field, s string) ([BlockSize]byte, error) {
	var block [BlockSize]byte

	raw, err := hex.DecodeString(s)
	if err != nil {
		return block, fmt.Errorf("invalid %s hex: %w", field, err)
	}
	if len(raw) != BlockSize {
		return block, fmt.Errorf("%s must be %d bytes, got %d",
			field, BlockSize, len(raw))
	}

	copy(block[:], raw)
	return block, nil
}

// Package internal provides cryptographic helpers for go-aes128 and its
// examples. It wraps golang.org/x/crypto and crypto/* packages.
package internal

import (
	"golang.org/x/crypto/blake2b"
)

// FingerprintSize is the length of a schedule fingerprint in bytes.
const FingerprintSize = 8

// fingerprintKey domain-separates schedule fingerprints from any other
// BLAKE2b use of the same bytes.
var fingerprintKey = []byte("go-aes128 schedule fingerprint")

// ScheduleFingerprint returns a short keyed BLAKE2b-256 digest of a
// serialized key schedule, suitable for logs.
func ScheduleFingerprint(schedule []byte) [FingerprintSize]byte {
	var fp [FingerprintSize]byte

	h, err := blake2b.New256(fingerprintKey)
	if err != nil {
		// Only possible for keys longer than 64 bytes.
		panic(err)
	}
	h.Write(schedule)
	copy(fp[:], h.Sum(nil))

	return fp
}

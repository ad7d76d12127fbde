package aes128

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

const (
	// Nk is the key length in 32-bit words.
	Nk = KeySize / 4

	// Nb is the block length in 32-bit words.
	Nb = BlockSize / 4

	// ScheduleWords is the number of words produced by key expansion,
	// one Nb-word round key for the initial whitening and each round.
	ScheduleWords = Nb * (Rounds + 1)
)

// ErrInvalidKeyLength is matched by every error returned for a key that is
// not exactly KeySize bytes long.
var ErrInvalidKeyLength = errors.New("aes128: invalid key length")

// KeySizeError reports the length of a rejected key.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("aes128: invalid key length %d, want %d", int(k), KeySize)
}

// Is makes errors.Is(err, ErrInvalidKeyLength) succeed for a KeySizeError.
func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}

// RoundKeySchedule is the expanded key: ScheduleWords big-endian words,
// with round key r occupying words 4r through 4r+3.
type RoundKeySchedule [ScheduleWords]uint32

// ExpandKey runs the FIPS-197 §5.2 key expansion on a 16-byte key.
func ExpandKey(key []byte) (RoundKeySchedule, error) {
	var w RoundKeySchedule

	if len(key) != KeySize {
		return w, KeySizeError(len(key))
	}

	for i := 0; i < Nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := Nk; i < ScheduleWords; i++ {
		temp := w[i-1]
		if i%Nk == 0 {
			temp = subWord(rotWord(temp)) ^ uint32(rcon[i/Nk-1])<<24
		}
		w[i] = w[i-Nk] ^ temp
	}

	return w, nil
}

// RoundKey returns round key r (0 through Rounds) laid out as a State:
// word c of the round key fills column c, most significant byte in row 0.
func (rk *RoundKeySchedule) RoundKey(r int) State {
	if r < 0 || r > Rounds {
		panic(fmt.Sprintf("aes128: round key %d out of range", r))
	}

	var s State
	for c := 0; c < Nb; c++ {
		word := rk[Nb*r+c]
		s[0][c] = byte(word >> 24)
		s[1][c] = byte(word >> 16)
		s[2][c] = byte(word >> 8)
		s[3][c] = byte(word)
	}
	return s
}

// Words returns a copy of the schedule as a slice.
func (rk *RoundKeySchedule) Words() []uint32 {
	return append([]uint32(nil), rk[:]...)
}

// Bytes serializes the schedule big-endian, round key 0 first.
func (rk *RoundKeySchedule) Bytes() []byte {
	out := make([]byte, 4*ScheduleWords)
	for i, word := range rk {
		binary.BigEndian.PutUint32(out[4*i:], word)
	}
	return out
}

// rotWord rotates a word left by one byte: [a0 a1 a2 a3] -> [a1 a2 a3 a0].
func rotWord(w uint32) uint32 {
	return bits.RotateLeft32(w, 8)
}

// subWord applies the S-Box to each byte of w.
func subWord(w uint32) uint32 {
	return uint32(SBox(byte(w>>24)))<<24 |
		uint32(SBox(byte(w>>16)))<<16 |
		uint32(SBox(byte(w>>8)))<<8 |
		uint32(SBox(byte(w)))
}

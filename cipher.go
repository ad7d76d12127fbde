package aes128

// RoundObserver is notified with a copy of the state after each round of an
// encryption. Round 0 is the initial AddRoundKey; round Rounds holds the
// ciphertext.
type RoundObserver interface {
	ObserveRound(round int, s State)
}

// RoundObserverFunc adapts an ordinary function to a RoundObserver.
type RoundObserverFunc func(round int, s State)

// ObserveRound calls f(round, s).
func (f RoundObserverFunc) ObserveRound(round int, s State) {
	f(round, s)
}

// EncryptBlock encrypts one block under an expanded key.
func EncryptBlock(rk RoundKeySchedule, plaintext [BlockSize]byte) [BlockSize]byte {
	return encrypt(&rk, plaintext, nil)
}

// EncryptBlockObserved is EncryptBlock with obs notified after every round.
// A nil observer is allowed.
func EncryptBlockObserved(rk RoundKeySchedule, plaintext [BlockSize]byte,
	obs RoundObserver) [BlockSize]byte {

	return encrypt(&rk, plaintext, obs)
}

// encrypt runs the FIPS-197 §5.1 cipher. The only branch is on the round
// counter: the final round skips MixColumns.
func encrypt(rk *RoundKeySchedule, plaintext [BlockSize]byte,
	obs RoundObserver) [BlockSize]byte {

	trace := traceEnabled()
	notify := func(round int, s State) {
		if obs != nil {
			obs.ObserveRound(round, s)
		}
		if trace {
			log.Tracef("round %d: %v\n%v", round, s, spewState(s))
		}
	}

	s := AddRoundKey(StateFromBytes(plaintext), rk.RoundKey(0))
	notify(0, s)

	for round := 1; round < Rounds; round++ {
		s = SubBytes(s)
		s = ShiftRows(s)
		s = MixColumns(s)
		s = AddRoundKey(s, rk.RoundKey(round))
		notify(round, s)
	}

	s = SubBytes(s)
	s = ShiftRows(s)
	s = AddRoundKey(s, rk.RoundKey(Rounds))
	notify(Rounds, s)

	return s.Bytes()
}

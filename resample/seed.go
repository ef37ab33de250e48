package resample

import (
	crand "crypto/rand"
	"encoding/binary"
)

// PairSeed derives the seed for the (window index, replicate index)
// cell. The Szudzik pairing function is injective over non-negative
// pairs, so no two cells share a seed; a SplitMix64 finalizer then
// spreads neighbouring pair codes across the whole seed space so
// adjacent cells do not get correlated generator states.
func PairSeed(i, t int) uint64 {
	a, b := uint64(i), uint64(t)
	var z uint64
	if a >= b {
		z = a*a + a + b
	} else {
		z = b*b + a
	}
	return mix64(z)
}

// mix64 is the SplitMix64 finalizer.
func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// EntropySeed returns a nondeterministic seed from the OS entropy pool.
func EntropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// The pool is unavailable; fall back to a fixed but mixed value
		// rather than failing a statistics run.
		return mix64(0xdeadbeef)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

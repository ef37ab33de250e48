// Package resample is the randomness engine of the bootstrap: uniform
// with-replacement draws from a window's values.
//
// Draw accepts any *rand.Rand so callers control the seeding policy.
// The vectorized orchestrator hands each worker its own source; the loop
// orchestrator uses DrawSeeded with a seed derived per result-table cell:
//
//	draw, err := resample.DrawSeeded(win.Values, m, resample.PairSeed(i, t))
//
// PairSeed is collision-free over (window, replicate) index pairs. The
// obvious derivation seed = i*t collides whenever two pairs share a
// product (2*3 and 1*6, say), silently correlating unrelated cells, so
// the derivation here pairs injectively before mixing.
//
// Sources come from golang.org/x/exp/rand, whose PCG streams are stable
// across platforms and Go releases; reproducibility of a seeded run is
// part of this package's contract.
package resample

package bakery

import "fmt"

// Seed is the explicit state of the uniform sampler. Every draw
// consumes a seed and returns the successor, so a run is exactly
// reproducible from its starting value. There is no hidden generator
// state anywhere in the simulation.
type Seed uint64

// NewSeed derives a sampler seed from an arbitrary integer, typically
// time-based at process start.
func NewSeed(v int64) Seed {
	return Seed(v)
}

// next advances the seed one step (splitmix64) and returns the drawn
// 64-bit value alongside the successor seed.
func (s Seed) next() (uint64, Seed) {
	z := uint64(s) + 0x9e3779b97f4a7c15
	next := Seed(z)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return z, next
}

// String returns a debug representation of the seed.
func (s Seed) String() string {
	return fmt.Sprintf("%016x", uint64(s))
}

// PickIndex draws a uniform index in [0, n). For n <= 0 it returns
// ok=false with the seed unchanged; the draw is skipped entirely so
// an empty candidate list never consumes randomness.
func PickIndex(s Seed, n int) (int, Seed, bool) {
	if n <= 0 {
		return 0, s, false
	}
	v, next := s.next()
	return int(v % uint64(n)), next, true
}

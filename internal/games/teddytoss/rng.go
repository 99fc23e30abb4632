package teddytoss

// SimpleRNG is a fast deterministic PRNG (linear congruential generator).
// Used instead of math/rand for reproducible gameplay across runs with the
// same seed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	if seed == 0 {
		seed = 1
	}
	return &SimpleRNG{state: uint64(seed)} //#nosec G115 -- deliberate wrap for seeding
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is a small positive int
}

// Float64 returns a random float64 in [0.0, 1.0).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}

// FloatRange returns a random float64 in [min, max).
func (r *SimpleRNG) FloatRange(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

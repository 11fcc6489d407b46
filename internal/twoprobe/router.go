package twoprobe

// secondProbeMultiplier spreads the secondary slot index away from the
// primary one. It is odd and distinct from 1 so that multiplication
// modulo 2^64 is a bijection and the same key always maps to the same
// slot pair. The value is the 64-bit golden ratio constant.
const secondProbeMultiplier uint64 = 0x9E3779B97F4A7C15

// route derives the two candidate slot indices for a hash sum in a table
// of n slots. It is a pure function: the same (sum, n) always yields the
// same pair. n must be greater than zero; the caller validates capacity
// before any routing happens.
func route(sum uint64, n int) (int, int) {
	idx1 := int(sum % uint64(n))
	idx2 := int((sum * secondProbeMultiplier) % uint64(n))

	return idx1, idx2
}

package fix

// sat.go contains saturating 32 bit helpers. Like most of the 8 bit code
// these started life with a few variants each; the exported functions use
// whichever looked best in sat_test.go's benchmarks.

const (
	maxInt32 int64 = 0x7fffffff
	minInt32 int64 = -0x80000000
)

// Sat32 narrows x to an int32, clipping to the minimum or maximum value
// instead of wrapping.
func Sat32(x int64) int32 {
	return sat32min(x)
}

// sat32min uses the min and max builtins, which reliably compile to
// conditional selects.
func sat32min(x int64) int32 {
	return int32(max(min(x, maxInt32), minInt32))
}

// sat32branch is the obvious version.
func sat32branch(x int64) int32 {
	if x > maxInt32 {
		return int32(maxInt32)
	}
	if x < minInt32 {
		return int32(minInt32)
	}
	return int32(x)
}

// SAdd32 is a saturating +.
func SAdd32(a, b int32) int32 {
	return Sat32(int64(a) + int64(b))
}

// SMulQ12 scales a sample by a weight, truncating toward zero. The weight is
// clamped first so this can never overflow.
func SMulQ12(s int32, q Q12) int32 {
	return int32(int64(s) * int64(q.Clamp()) / int64(MaxQ12))
}

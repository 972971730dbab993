package num

import "math/bits"

// U128 is an unsigned 128-bit integer stored as two 64-bit words in
// little-endian order.
type U128 [2]uint64

// U128From64 returns a U128 holding v.
func U128From64(v uint64) U128 {
	return U128{v}
}

// U128FromRaw builds a U128 from its low and high words.
func U128FromRaw(lo, hi uint64) U128 {
	return U128{lo, hi}
}

// IsZero reports whether x == 0.
func (x U128) IsZero() bool {
	return x[0]|x[1] == 0
}

// Uint64 narrows x into a uint64.
// ok is false if the value does not fit.
func (x U128) Uint64() (v uint64, ok bool) {
	return x[0], x[1] == 0
}

// Cmp returns -1 if x < y, 0 if x == y, 1 if x > y.
func (x U128) Cmp(y U128) int {
	return cmpWords(x[:], y[:])
}

// Add returns x+y. ok is false if the sum does not fit 128 bits.
func (x U128) Add(y U128) (sum U128, ok bool) {
	var c uint64
	sum[0], c = bits.Add64(x[0], y[0], 0)
	sum[1], c = bits.Add64(x[1], y[1], c)
	return sum, c == 0
}

// Sub returns x-y. ok is false if y > x.
func (x U128) Sub(y U128) (diff U128, ok bool) {
	var b uint64
	diff[0], b = bits.Sub64(x[0], y[0], 0)
	diff[1], b = bits.Sub64(x[1], y[1], b)
	return diff, b == 0
}

// Mul returns x*y. The product is computed at full 256-bit width;
// ok is false if it does not fit 128 bits.
func (x U128) Mul(y U128) (prod U128, ok bool) {
	var p [4]uint64
	mulWords(p[:], x[:], y[:])
	return U128{p[0], p[1]}, p[2]|p[3] == 0
}

// Div returns x/y truncated toward zero. ok is false if y == 0.
func (x U128) Div(y U128) (quo U128, ok bool) {
	if y.IsZero() {
		return U128{}, false
	}
	q, _ := udivrem(x[:], y[:])
	return U128{q[0], q[1]}, true
}

// String returns the decimal representation of x.
func (x U128) String() string {
	return formatWords(x[:])
}

package num

import "math/bits"

// U192 is an unsigned 192-bit integer stored as three 64-bit words in
// little-endian order.
type U192 [3]uint64

// U192From64 returns a U192 holding v.
func U192From64(v uint64) U192 {
	return U192{v}
}

// U192FromRaw builds a U192 from its low, middle and high words.
func U192FromRaw(lo, mid, hi uint64) U192 {
	return U192{lo, mid, hi}
}

// U192FromU128 widens a U128 into a U192.
func U192FromU128(v U128) U192 {
	return U192{v[0], v[1]}
}

// IsZero reports whether x == 0.
func (x U192) IsZero() bool {
	return x[0]|x[1]|x[2] == 0
}

// Uint64 narrows x into a uint64.
// ok is false if the value does not fit.
func (x U192) Uint64() (v uint64, ok bool) {
	return x[0], x[1]|x[2] == 0
}

// U128 narrows x into a U128. ok is false if the value does not fit.
func (x U192) U128() (v U128, ok bool) {
	return U128{x[0], x[1]}, x[2] == 0
}

// Cmp returns -1 if x < y, 0 if x == y, 1 if x > y.
func (x U192) Cmp(y U192) int {
	return cmpWords(x[:], y[:])
}

// Add returns x+y. ok is false if the sum does not fit 192 bits.
func (x U192) Add(y U192) (sum U192, ok bool) {
	var c uint64
	sum[0], c = bits.Add64(x[0], y[0], 0)
	sum[1], c = bits.Add64(x[1], y[1], c)
	sum[2], c = bits.Add64(x[2], y[2], c)
	return sum, c == 0
}

// Sub returns x-y. ok is false if y > x.
func (x U192) Sub(y U192) (diff U192, ok bool) {
	var b uint64
	diff[0], b = bits.Sub64(x[0], y[0], 0)
	diff[1], b = bits.Sub64(x[1], y[1], b)
	diff[2], b = bits.Sub64(x[2], y[2], b)
	return diff, b == 0
}

// Mul returns x*y. The product is computed at full 384-bit width;
// ok is false if it does not fit 192 bits.
func (x U192) Mul(y U192) (prod U192, ok bool) {
	var p [6]uint64
	mulWords(p[:], x[:], y[:])
	return U192{p[0], p[1], p[2]}, p[3]|p[4]|p[5] == 0
}

// Div returns x/y truncated toward zero. ok is false if y == 0.
func (x U192) Div(y U192) (quo U192, ok bool) {
	if y.IsZero() {
		return U192{}, false
	}
	q, _ := udivrem(x[:], y[:])
	return U192{q[0], q[1], q[2]}, true
}

// String returns the decimal representation of x.
func (x U192) String() string {
	return formatWords(x[:])
}

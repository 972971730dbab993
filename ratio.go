package wad

import "math/bits"

// Ratio scales a single integer amount by a simple fraction. It is a
// multiply-then-divide descriptor, not a fixed-point number: no
// invariant is enforced at construction, and a zero denominator fails
// at use time.
type Ratio struct {
	Numerator   uint64
	Denominator uint64
}

// NewRatio returns the fraction numerator/denominator.
func NewRatio(numerator, denominator uint64) Ratio {
	return Ratio{Numerator: numerator, Denominator: denominator}
}

// Mul returns floor(Numerator*amount/Denominator). The product is
// computed at 128 bits, so it cannot overflow; Mul panics if the
// denominator is zero or the quotient does not fit a uint64.
func (r Ratio) Mul(amount uint64) uint64 {
	hi, lo := bits.Mul64(r.Numerator, amount)
	if r.Denominator == 0 || hi >= r.Denominator {
		panic("ratio overflow")
	}
	q, _ := bits.Div64(hi, lo, r.Denominator)
	return q
}

package wad

import (
	"github.com/hubbleprotocol/decimal-wad/num"
)

// Rate is a small wad-scaled fixed-point value, precise to 18 decimal
// digits, stored in 128 bits. It is meant for quantities with a
// moderate dynamic range: percentages, interest factors, exponents.
// The zero value is 0.
type Rate struct {
	v num.U128
}

// RateZero returns 0.
func RateZero() Rate {
	return Rate{}
}

// RateOne returns 1.
func RateOne() Rate {
	return Rate{v: num.U128From64(WAD)}
}

// RateHalf returns 0.5.
func RateHalf() Rate {
	return Rate{v: num.U128From64(HalfWAD)}
}

// RateFromPercent returns percent/100 as a Rate.
func RateFromPercent(percent uint8) Rate {
	return Rate{v: num.U128From64(uint64(percent) * PercentScaler)}
}

// RateFromBPS returns bps/10000 as a Rate.
func RateFromBPS(bps uint16) Rate {
	return Rate{v: num.U128From64(uint64(bps) * BPSScaler)}
}

// RateFromBPS64 returns bps/10000 as a Rate. The scaling multiply is
// performed at 128 bits and cannot overflow for a 64-bit input.
func RateFromBPS64(bps uint64) Rate {
	p, _ := num.U128From64(bps).Mul(num.U128From64(BPSScaler))
	return Rate{v: p}
}

// RateFromInt returns the whole number n as a Rate. n*WAD always fits
// 128 bits, so the conversion cannot fail.
func RateFromInt(n uint64) Rate {
	p, _ := num.U128From64(n).Mul(num.U128From64(WAD))
	return Rate{v: p}
}

// RateFromScaled wraps a raw value already scaled by WAD.
// This is the only constructor that applies no scaling; the caller is
// responsible for raw being expressed in units of 10^-18.
func RateFromScaled(raw uint64) Rate {
	return Rate{v: num.U128From64(raw)}
}

// RateFromDecimal narrows a Decimal into a Rate. Returns
// ErrMathOverflow if the Decimal's raw value exceeds 128 bits.
func RateFromDecimal(d Decimal) (Rate, error) {
	v, ok := d.v.U128()
	if !ok {
		return Rate{}, ErrMathOverflow
	}
	return Rate{v: v}, nil
}

// Raw returns the underlying wad-scaled value.
func (r Rate) Raw() num.U128 {
	return r.v
}

// ToScaled returns the raw wad-scaled value.
func (r Rate) ToScaled() num.U128 {
	return r.v
}

// ToPercent returns the value in whole percents, truncated.
func (r Rate) ToPercent() (uint64, error) {
	return r.descale(PercentScaler)
}

// ToBPS returns the value in basis points, truncated.
func (r Rate) ToBPS() (uint64, error) {
	return r.descale(BPSScaler)
}

func (r Rate) descale(scaler uint64) (uint64, error) {
	q, _ := r.v.Div(num.U128From64(scaler))
	u, ok := q.Uint64()
	if !ok {
		return 0, ErrMathOverflow
	}
	return u, nil
}

// TryRound rounds to the nearest whole number, half up.
func (r Rate) TryRound() (uint64, error) {
	return r.narrowWithBias(HalfWAD)
}

// TryCeil rounds up to a whole number.
func (r Rate) TryCeil() (uint64, error) {
	return r.narrowWithBias(WAD - 1)
}

// TryFloor truncates to a whole number.
func (r Rate) TryFloor() (uint64, error) {
	return r.narrowWithBias(0)
}

func (r Rate) narrowWithBias(bias uint64) (uint64, error) {
	sum, ok := r.v.Add(num.U128From64(bias))
	if !ok {
		return 0, ErrMathOverflow
	}
	q, _ := sum.Div(num.U128From64(WAD))
	u, ok := q.Uint64()
	if !ok {
		return 0, ErrMathOverflow
	}
	return u, nil
}

// TryAdd returns r+rhs, or ErrMathOverflow.
func (r Rate) TryAdd(rhs Rate) (Rate, error) {
	sum, ok := r.v.Add(rhs.v)
	if !ok {
		return Rate{}, ErrMathOverflow
	}
	return Rate{v: sum}, nil
}

// TrySub returns r-rhs, or ErrMathOverflow on underflow.
func (r Rate) TrySub(rhs Rate) (Rate, error) {
	diff, ok := r.v.Sub(rhs.v)
	if !ok {
		return Rate{}, ErrMathOverflow
	}
	return Rate{v: diff}, nil
}

// TryMul multiplies two rates: the raw product is computed at double
// width and descaled by WAD.
func (r Rate) TryMul(rhs Rate) (Rate, error) {
	p, ok := r.v.Mul(rhs.v)
	if !ok {
		return Rate{}, ErrMathOverflow
	}
	q, ok := p.Div(num.U128From64(WAD))
	if !ok {
		return Rate{}, ErrMathOverflow
	}
	return Rate{v: q}, nil
}

// TryMulInt multiplies by a plain integer; the scale is unchanged.
func (r Rate) TryMulInt(rhs uint64) (Rate, error) {
	p, ok := r.v.Mul(num.U128From64(rhs))
	if !ok {
		return Rate{}, ErrMathOverflow
	}
	return Rate{v: p}, nil
}

// TryDiv divides by another rate: the numerator is scaled up by WAD
// before dividing so the quotient stays on the wad scale.
func (r Rate) TryDiv(rhs Rate) (Rate, error) {
	p, ok := r.v.Mul(num.U128From64(WAD))
	if !ok {
		return Rate{}, ErrMathOverflow
	}
	q, ok := p.Div(rhs.v)
	if !ok {
		return Rate{}, ErrMathOverflow
	}
	return Rate{v: q}, nil
}

// TryDivInt divides by a plain integer; the scale is unchanged.
// Unlike TryDiv, no rescaling is applied.
func (r Rate) TryDivInt(rhs uint64) (Rate, error) {
	q, ok := r.v.Div(num.U128From64(rhs))
	if !ok {
		return Rate{}, ErrMathOverflow
	}
	return Rate{v: q}, nil
}

// TryPow computes r^exp by iterative squaring in O(log exp) fixed-point
// multiplies. r^0 is one. Any intermediate overflow aborts with
// ErrMathOverflow; note that the running base is squared once per
// iteration even on the last one, so the computation can fail on an
// overflowing square whose result would not have been needed.
func (r Rate) TryPow(exp uint64) (Rate, error) {
	base := r
	ret := RateOne()
	if exp%2 != 0 {
		ret = base
	}
	var err error
	for exp > 0 {
		exp /= 2
		if base, err = base.TryMul(base); err != nil {
			return Rate{}, err
		}
		if exp%2 != 0 {
			if ret, err = ret.TryMul(base); err != nil {
				return Rate{}, err
			}
		}
	}
	return ret, nil
}

// IsZero reports whether r == 0.
func (r Rate) IsZero() bool {
	return r.v.IsZero()
}

// Cmp returns -1 if r < other, 0 if equal, 1 if r > other.
func (r Rate) Cmp(other Rate) int {
	return r.v.Cmp(other.v)
}

// String renders the value with exactly 18 fractional digits.
func (r Rate) String() string {
	return formatScaled(r.v.String())
}

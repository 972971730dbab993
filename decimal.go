package wad

import (
	"github.com/hubbleprotocol/decimal-wad/num"
)

// Decimal is a large wad-scaled fixed-point value, precise to 18
// decimal digits, stored in 192 bits. It covers magnitudes that would
// overflow a Rate, such as token amounts and products of large
// quantities. The zero value is 0.
type Decimal struct {
	v num.U192
}

// DecimalZero returns 0.
func DecimalZero() Decimal {
	return Decimal{}
}

// DecimalOne returns 1.
func DecimalOne() Decimal {
	return Decimal{v: num.U192From64(WAD)}
}

// DecimalFromInt returns the whole number n as a Decimal. n*WAD always
// fits 192 bits, so the conversion cannot fail.
func DecimalFromInt(n uint64) Decimal {
	p, _ := num.U192From64(n).Mul(num.U192From64(WAD))
	return Decimal{v: p}
}

// DecimalFromU128 returns the whole number val as a Decimal. Even the
// full 128-bit range scales into 192 bits without overflow.
func DecimalFromU128(val num.U128) Decimal {
	p, _ := num.U192FromU128(val).Mul(num.U192From64(WAD))
	return Decimal{v: p}
}

// DecimalFromPercent returns percent/100 as a Decimal.
func DecimalFromPercent(percent uint64) Decimal {
	p, _ := num.U192From64(percent).Mul(num.U192From64(PercentScaler))
	return Decimal{v: p}
}

// DecimalFromBPS returns bps/10000 as a Decimal.
func DecimalFromBPS(bps uint64) Decimal {
	p, _ := num.U192From64(bps).Mul(num.U192From64(BPSScaler))
	return Decimal{v: p}
}

// DecimalFromScaled wraps a raw value already scaled by WAD.
// No scaling is applied; the caller is responsible for raw being
// expressed in units of 10^-18.
func DecimalFromScaled(raw uint64) Decimal {
	return Decimal{v: num.U192From64(raw)}
}

// DecimalFromScaledU128 wraps a 128-bit raw value already scaled by WAD.
func DecimalFromScaledU128(raw num.U128) Decimal {
	return Decimal{v: num.U192FromU128(raw)}
}

// DecimalFromRate widens a Rate into a Decimal. Both use the same
// scale, so the raw value is re-based unchanged.
func DecimalFromRate(r Rate) Decimal {
	return Decimal{v: num.U192FromU128(r.v)}
}

// Raw returns the underlying wad-scaled value.
func (d Decimal) Raw() num.U192 {
	return d.v
}

// ToScaled narrows the raw wad-scaled value into a uint64.
func (d Decimal) ToScaled() (uint64, error) {
	u, ok := d.v.Uint64()
	if !ok {
		return 0, ErrMathOverflow
	}
	return u, nil
}

// ToScaledU128 narrows the raw wad-scaled value into a U128.
func (d Decimal) ToScaledU128() (num.U128, error) {
	v, ok := d.v.U128()
	if !ok {
		return num.U128{}, ErrMathOverflow
	}
	return v, nil
}

// ToPercent returns the value in whole percents, truncated.
func (d Decimal) ToPercent() (uint64, error) {
	return d.descale(PercentScaler)
}

// ToBPS returns the value in basis points, truncated.
func (d Decimal) ToBPS() (uint64, error) {
	return d.descale(BPSScaler)
}

func (d Decimal) descale(scaler uint64) (uint64, error) {
	q, _ := d.v.Div(num.U192From64(scaler))
	u, ok := q.Uint64()
	if !ok {
		return 0, ErrMathOverflow
	}
	return u, nil
}

// TryRound rounds to the nearest whole number, half up.
func (d Decimal) TryRound() (uint64, error) {
	q, err := d.wholeWithBias(HalfWAD)
	if err != nil {
		return 0, err
	}
	u, ok := q.Uint64()
	if !ok {
		return 0, ErrMathOverflow
	}
	return u, nil
}

// TryRoundU128 rounds to the nearest whole number, half up, as a U128.
func (d Decimal) TryRoundU128() (num.U128, error) {
	return d.wholeU128(HalfWAD)
}

// TryCeil rounds up to a whole number.
func (d Decimal) TryCeil() (uint64, error) {
	q, err := d.wholeWithBias(WAD - 1)
	if err != nil {
		return 0, err
	}
	u, ok := q.Uint64()
	if !ok {
		return 0, ErrMathOverflow
	}
	return u, nil
}

// TryCeilU128 rounds up to a whole number as a U128.
func (d Decimal) TryCeilU128() (num.U128, error) {
	return d.wholeU128(WAD - 1)
}

// TryFloor truncates to a whole number.
func (d Decimal) TryFloor() (uint64, error) {
	q, err := d.wholeWithBias(0)
	if err != nil {
		return 0, err
	}
	u, ok := q.Uint64()
	if !ok {
		return 0, ErrMathOverflow
	}
	return u, nil
}

// TryFloorU128 truncates to a whole number as a U128.
func (d Decimal) TryFloorU128() (num.U128, error) {
	return d.wholeU128(0)
}

func (d Decimal) wholeWithBias(bias uint64) (num.U192, error) {
	sum, ok := d.v.Add(num.U192From64(bias))
	if !ok {
		return num.U192{}, ErrMathOverflow
	}
	q, _ := sum.Div(num.U192From64(WAD))
	return q, nil
}

func (d Decimal) wholeU128(bias uint64) (num.U128, error) {
	q, err := d.wholeWithBias(bias)
	if err != nil {
		return num.U128{}, err
	}
	v, ok := q.U128()
	if !ok {
		return num.U128{}, ErrMathOverflow
	}
	return v, nil
}

// TryAdd returns d+rhs, or ErrMathOverflow.
func (d Decimal) TryAdd(rhs Decimal) (Decimal, error) {
	sum, ok := d.v.Add(rhs.v)
	if !ok {
		return Decimal{}, ErrMathOverflow
	}
	return Decimal{v: sum}, nil
}

// TrySub returns d-rhs, or ErrMathOverflow on underflow.
func (d Decimal) TrySub(rhs Decimal) (Decimal, error) {
	diff, ok := d.v.Sub(rhs.v)
	if !ok {
		return Decimal{}, ErrMathOverflow
	}
	return Decimal{v: diff}, nil
}

// TryMul multiplies two decimals: the raw product is computed at
// double width and descaled by WAD. The exact operand bound is
// raw*rhs.raw < 2^192, roughly value*rhs < 6.3e21 in whole units, which
// is below the per-operand maximum of the type; overflow is detected
// exactly and never truncated.
func (d Decimal) TryMul(rhs Decimal) (Decimal, error) {
	p, ok := d.v.Mul(rhs.v)
	if !ok {
		return Decimal{}, ErrMathOverflow
	}
	q, ok := p.Div(num.U192From64(WAD))
	if !ok {
		return Decimal{}, ErrMathOverflow
	}
	return Decimal{v: q}, nil
}

// TryMulRate multiplies by a Rate by re-basing it into a Decimal first.
func (d Decimal) TryMulRate(rhs Rate) (Decimal, error) {
	return d.TryMul(DecimalFromRate(rhs))
}

// TryMulInt multiplies by a plain integer; the scale is unchanged.
func (d Decimal) TryMulInt(rhs uint64) (Decimal, error) {
	p, ok := d.v.Mul(num.U192From64(rhs))
	if !ok {
		return Decimal{}, ErrMathOverflow
	}
	return Decimal{v: p}, nil
}

// TryDiv divides by another decimal: the numerator is scaled up by WAD
// before dividing so the quotient stays on the wad scale.
func (d Decimal) TryDiv(rhs Decimal) (Decimal, error) {
	p, ok := d.v.Mul(num.U192From64(WAD))
	if !ok {
		return Decimal{}, ErrMathOverflow
	}
	q, ok := p.Div(rhs.v)
	if !ok {
		return Decimal{}, ErrMathOverflow
	}
	return Decimal{v: q}, nil
}

// TryDivRate divides by a Rate by re-basing it into a Decimal first.
func (d Decimal) TryDivRate(rhs Rate) (Decimal, error) {
	return d.TryDiv(DecimalFromRate(rhs))
}

// TryDivInt divides by a plain integer; the scale is unchanged.
// Unlike TryDiv, no rescaling is applied.
func (d Decimal) TryDivInt(rhs uint64) (Decimal, error) {
	q, ok := d.v.Div(num.U192From64(rhs))
	if !ok {
		return Decimal{}, ErrMathOverflow
	}
	return Decimal{v: q}, nil
}

// IsZero reports whether d == 0.
func (d Decimal) IsZero() bool {
	return d.v.IsZero()
}

// Cmp returns -1 if d < other, 0 if equal, 1 if d > other.
func (d Decimal) Cmp(other Decimal) int {
	return d.v.Cmp(other.v)
}

// String renders the value with exactly 18 fractional digits.
func (d Decimal) String() string {
	return formatScaled(d.v.String())
}

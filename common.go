// Package wad implements deterministic, overflow-checked fixed-point
// arithmetic for monetary computations.
//
// Values are stored as unsigned integers scaled by 10^18 (a "wad").
// Rate keeps its raw value in 128 bits, Decimal in 192 bits; both share
// the same scale, so cross conversion never rescales. Every checked
// operation returns ErrMathOverflow instead of wrapping or truncating.
// The Must* methods layer an unchecked convenience API on top and must
// only be used where the caller has already bounded the operands.
package wad

import (
	"errors"
	"strings"
)

// Scale is the number of fractional decimal digits.
const Scale = 18

const (
	// WAD is the whole-unit scaler, 10^Scale.
	WAD uint64 = 1_000_000_000_000_000_000
	// HalfWAD is half of the whole-unit scaler, used for round-half-up.
	HalfWAD uint64 = 500_000_000_000_000_000
	// PercentScaler converts whole percents to wads.
	PercentScaler uint64 = 10_000_000_000_000_000
	// BPSScaler converts basis points to wads (100 bps = 1 percent).
	BPSScaler uint64 = PercentScaler / 100
	// RPTScaler is the scaler for the rate-per-time convention.
	RPTScaler uint64 = 1_000_000_000_000_000
)

// ErrMathOverflow is returned by every checked operation on arithmetic
// failure: overflow, underflow, division by zero, or a narrowing
// conversion that does not fit.
var ErrMathOverflow = errors.New("math overflow")

// TryAdder is the capability to add a value of the same type,
// reporting overflow.
type TryAdder[T any] interface {
	TryAdd(rhs T) (T, error)
}

// TrySubber is the capability to subtract a value of the same type,
// reporting underflow.
type TrySubber[T any] interface {
	TrySub(rhs T) (T, error)
}

// TryMuler is the capability to multiply by RHS, reporting overflow.
type TryMuler[T, RHS any] interface {
	TryMul(rhs RHS) (T, error)
}

// TryDiver is the capability to divide by RHS, reporting overflow or
// division by zero.
type TryDiver[T, RHS any] interface {
	TryDiv(rhs RHS) (T, error)
}

var (
	_ TryAdder[Rate]             = Rate{}
	_ TrySubber[Rate]            = Rate{}
	_ TryMuler[Rate, Rate]       = Rate{}
	_ TryDiver[Rate, Rate]       = Rate{}
	_ TryAdder[Decimal]          = Decimal{}
	_ TrySubber[Decimal]         = Decimal{}
	_ TryMuler[Decimal, Decimal] = Decimal{}
	_ TryDiver[Decimal, Decimal] = Decimal{}
)

const zeros = "000000000000000000" // Scale zeros

// formatScaled renders the digit string of a raw wad-scaled value as a
// fixed-point decimal: pad to Scale digits behind "0." when short,
// otherwise insert the dot Scale digits from the right.
func formatScaled(digits string) string {
	if len(digits) <= Scale {
		var b strings.Builder
		b.WriteString("0.")
		b.WriteString(zeros[:Scale-len(digits)])
		b.WriteString(digits)
		return b.String()
	}
	return digits[:len(digits)-Scale] + "." + digits[len(digits)-Scale:]
}

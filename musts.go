package wad

import "fmt"

// The Must* methods are the unchecked convenience layer over the
// checked Try* core: they panic on any arithmetic failure. Use them
// only where the caller has already established that overflow cannot
// occur, such as test code or provably bounded paths.

// MustAdd is like [Rate.TryAdd] but panics on overflow.
func (r Rate) MustAdd(rhs Rate) Rate {
	v, err := r.TryAdd(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", r, err))
	}
	return v
}

// MustSub is like [Rate.TrySub] but panics on underflow.
func (r Rate) MustSub(rhs Rate) Rate {
	v, err := r.TrySub(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", r, err))
	}
	return v
}

// MustMul is like [Rate.TryMul] but panics on overflow.
func (r Rate) MustMul(rhs Rate) Rate {
	v, err := r.TryMul(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", r, err))
	}
	return v
}

// MustMulInt is like [Rate.TryMulInt] but panics on overflow.
func (r Rate) MustMulInt(rhs uint64) Rate {
	v, err := r.TryMulInt(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustMulInt(%v) failed: %v", r, err))
	}
	return v
}

// MustDiv is like [Rate.TryDiv] but panics on failure.
func (r Rate) MustDiv(rhs Rate) Rate {
	v, err := r.TryDiv(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", r, err))
	}
	return v
}

// MustDivInt is like [Rate.TryDivInt] but panics on failure.
func (r Rate) MustDivInt(rhs uint64) Rate {
	v, err := r.TryDivInt(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustDivInt(%v) failed: %v", r, err))
	}
	return v
}

// MustPow is like [Rate.TryPow] but panics on overflow.
func (r Rate) MustPow(exp uint64) Rate {
	v, err := r.TryPow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", r, err))
	}
	return v
}

// MustAdd is like [Decimal.TryAdd] but panics on overflow.
func (d Decimal) MustAdd(rhs Decimal) Decimal {
	v, err := d.TryAdd(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return v
}

// MustSub is like [Decimal.TrySub] but panics on underflow.
func (d Decimal) MustSub(rhs Decimal) Decimal {
	v, err := d.TrySub(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return v
}

// MustMul is like [Decimal.TryMul] but panics on overflow.
func (d Decimal) MustMul(rhs Decimal) Decimal {
	v, err := d.TryMul(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return v
}

// MustMulRate is like [Decimal.TryMulRate] but panics on overflow.
func (d Decimal) MustMulRate(rhs Rate) Decimal {
	v, err := d.TryMulRate(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustMulRate(%v) failed: %v", d, err))
	}
	return v
}

// MustMulInt is like [Decimal.TryMulInt] but panics on overflow.
func (d Decimal) MustMulInt(rhs uint64) Decimal {
	v, err := d.TryMulInt(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustMulInt(%v) failed: %v", d, err))
	}
	return v
}

// MustDiv is like [Decimal.TryDiv] but panics on failure.
func (d Decimal) MustDiv(rhs Decimal) Decimal {
	v, err := d.TryDiv(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", d, err))
	}
	return v
}

// MustDivRate is like [Decimal.TryDivRate] but panics on failure.
func (d Decimal) MustDivRate(rhs Rate) Decimal {
	v, err := d.TryDivRate(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustDivRate(%v) failed: %v", d, err))
	}
	return v
}

// MustDivInt is like [Decimal.TryDivInt] but panics on failure.
func (d Decimal) MustDivInt(rhs uint64) Decimal {
	v, err := d.TryDivInt(rhs)
	if err != nil {
		panic(fmt.Sprintf("MustDivInt(%v) failed: %v", d, err))
	}
	return v
}

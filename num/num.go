// Package num provides fixed-width wide unsigned integers (U128, U192)
// with overflow-checked arithmetic.
//
// Both types are immutable value types: every operation returns a new
// value together with an ok flag that reports whether the exact result
// fits the width. Nothing ever wraps, saturates, or truncates.
package num

import (
	"math/bits"
	"strconv"
	"strings"
)

// chunkBase is the largest power of ten that fits a word, used to peel
// 19 decimal digits per division when formatting.
const (
	chunkBase   = 10_000_000_000_000_000_000
	chunkDigits = 19
)

// mulWords computes the full product x*y into z.
// z must have len(x)+len(y) words and is fully overwritten.
func mulWords(z, x, y []uint64) {
	for i := range z {
		z[i] = 0
	}
	for i, xw := range x {
		if xw == 0 {
			continue
		}
		var carry uint64
		for j, yw := range y {
			hi, lo := bits.Mul64(xw, yw)
			lo, c := bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j] = lo
			carry = hi
		}
		z[i+len(y)] = carry
	}
}

// udivrem computes q = u/v and r = u%v over little-endian word slices
// using Knuth's algorithm D (TAOCP 4.3.1). v must be non-zero; the
// callers check for a zero divisor. q has len(u) words, r has len(v).
func udivrem(u, v []uint64) (q, r []uint64) {
	q = make([]uint64, len(u))
	r = make([]uint64, len(v))

	n := len(v)
	for n > 0 && v[n-1] == 0 {
		n--
	}
	m := len(u)
	for m > 0 && u[m-1] == 0 {
		m--
	}
	if m < n {
		copy(r, u)
		return q, r
	}
	if n == 1 {
		var rem uint64
		d := v[0]
		for i := m - 1; i >= 0; i-- {
			q[i], rem = bits.Div64(rem, u[i], d)
		}
		r[0] = rem
		return q, r
	}

	// Normalize so that the divisor's top bit is set.
	s := uint(bits.LeadingZeros64(v[n-1]))
	vn := make([]uint64, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = v[i]<<s | v[i-1]>>(64-s)
	}
	vn[0] = v[0] << s
	un := make([]uint64, m+1)
	un[m] = u[m-1] >> (64 - s)
	for i := m - 1; i > 0; i-- {
		un[i] = u[i]<<s | u[i-1]>>(64-s)
	}
	un[0] = u[0] << s

	for j := m - n; j >= 0; j-- {
		qhat := ^uint64(0)
		if un[j+n] < vn[n-1] {
			var rhat uint64
			qhat, rhat = bits.Div64(un[j+n], un[j+n-1], vn[n-1])
			for {
				hi, lo := bits.Mul64(qhat, vn[n-2])
				if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
					break
				}
				qhat--
				rhat += vn[n-1]
				if rhat < vn[n-1] { // rhat overflowed, qhat is now small enough
					break
				}
			}
		}

		// Multiply-subtract qhat*vn from un[j..j+n].
		var borrow uint64
		for i := 0; i < n; i++ {
			t, b1 := bits.Sub64(un[j+i], borrow, 0)
			ph, pl := bits.Mul64(qhat, vn[i])
			t, b2 := bits.Sub64(t, pl, 0)
			un[j+i] = t
			borrow = ph + b1 + b2
		}
		t, b := bits.Sub64(un[j+n], borrow, 0)
		un[j+n] = t

		if b != 0 { // qhat was one too large, add the divisor back
			qhat--
			var carry uint64
			for i := 0; i < n; i++ {
				un[j+i], carry = bits.Add64(un[j+i], vn[i], carry)
			}
			un[j+n] += carry
		}
		q[j] = qhat
	}

	// Denormalize the remainder.
	for i := 0; i < n-1; i++ {
		r[i] = un[i]>>s | un[i+1]<<(64-s)
	}
	r[n-1] = un[n-1] >> s
	return q, r
}

// formatWords renders a little-endian word slice as a decimal string by
// peeling 19-digit chunks from the least significant end.
func formatWords(words []uint64) string {
	u := make([]uint64, len(words))
	copy(u, words)
	var tail []byte
	for {
		var rem uint64
		zero := true
		for i := len(u) - 1; i >= 0; i-- {
			u[i], rem = bits.Div64(rem, u[i], chunkBase)
			if u[i] != 0 {
				zero = false
			}
		}
		chunk := strconv.FormatUint(rem, 10)
		if zero {
			return chunk + string(tail)
		}
		padded := strings.Repeat("0", chunkDigits-len(chunk)) + chunk
		tail = append([]byte(padded), tail...)
	}
}

func cmpWords(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const propIterations = 5000

// boundaryWords exercise carry, borrow and qhat-correction paths.
var boundaryWords = []uint64{
	0, 1, 2, 1<<63 - 1, 1 << 63, 1<<63 + 1, ^uint64(0) - 1, ^uint64(0),
}

func big128(x U128) *big.Int {
	v := new(big.Int).SetUint64(x[1])
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(x[0]))
}

func big192(x U192) *big.Int {
	v := new(big.Int).SetUint64(x[2])
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(x[1]))
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(x[0]))
}

func u128FromBig(v *big.Int) U128 {
	var mask big.Int
	mask.Sub(mask.Lsh(big.NewInt(1), 64), big.NewInt(1))
	lo := new(big.Int).And(v, &mask).Uint64()
	hi := new(big.Int).And(new(big.Int).Rsh(v, 64), &mask).Uint64()
	return U128{lo, hi}
}

// randU128 biases towards sparse values so that small operands, carries
// and single-word divisors all get exercised.
func randU128(rnd *rand.Rand) U128 {
	x := U128{rnd.Uint64(), rnd.Uint64()}
	if rnd.Intn(3) == 0 {
		x[1] = 0
	}
	if rnd.Intn(8) == 0 {
		x[0] = uint64(rnd.Intn(4))
	}
	return x
}

func randU192(rnd *rand.Rand) U192 {
	x := U192{rnd.Uint64(), rnd.Uint64(), rnd.Uint64()}
	if rnd.Intn(3) == 0 {
		x[2] = 0
	}
	if rnd.Intn(3) == 0 {
		x[1] = 0
	}
	if rnd.Intn(8) == 0 {
		x[0] = uint64(rnd.Intn(4))
	}
	return x
}

func TestU128Add(t *testing.T) {
	a := assert.New(t)
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	rnd := rand.New(rand.NewSource(1))
	check := func(x, y U128) {
		sum, ok := x.Add(y)
		want := new(big.Int).Add(big128(x), big128(y))
		if want.Cmp(max) > 0 {
			a.False(ok, "%v + %v", x, y)
			return
		}
		a.True(ok, "%v + %v", x, y)
		a.Equal(want.String(), big128(sum).String())
	}
	for _, w0 := range boundaryWords {
		for _, w1 := range boundaryWords {
			check(U128{w0, w1}, U128{w1, w0})
			check(U128{w0, w1}, U128{w0, w1})
		}
	}
	for i := 0; i < propIterations; i++ {
		check(randU128(rnd), randU128(rnd))
	}
}

func TestU128Sub(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(2))
	check := func(x, y U128) {
		diff, ok := x.Sub(y)
		bx, by := big128(x), big128(y)
		if bx.Cmp(by) < 0 {
			a.False(ok, "%v - %v", x, y)
			return
		}
		a.True(ok, "%v - %v", x, y)
		a.Equal(new(big.Int).Sub(bx, by).String(), big128(diff).String())
	}
	for _, w0 := range boundaryWords {
		for _, w1 := range boundaryWords {
			check(U128{w0, w1}, U128{w1, w0})
		}
	}
	for i := 0; i < propIterations; i++ {
		check(randU128(rnd), randU128(rnd))
	}
}

func TestU128Mul(t *testing.T) {
	a := assert.New(t)
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	rnd := rand.New(rand.NewSource(3))
	check := func(x, y U128) {
		prod, ok := x.Mul(y)
		want := new(big.Int).Mul(big128(x), big128(y))
		if want.Cmp(max) > 0 {
			a.False(ok, "%v * %v", x, y)
			return
		}
		a.True(ok, "%v * %v", x, y)
		a.Equal(want.String(), big128(prod).String())
	}
	for _, w0 := range boundaryWords {
		for _, w1 := range boundaryWords {
			check(U128{w0}, U128{w1})
			check(U128{w0, w1}, U128{w1, w0})
		}
	}
	for i := 0; i < propIterations; i++ {
		check(randU128(rnd), randU128(rnd))
	}
}

func TestU128Div(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(4))
	check := func(x, y U128) {
		quo, ok := x.Div(y)
		if y.IsZero() {
			a.False(ok, "%v / %v", x, y)
			return
		}
		a.True(ok, "%v / %v", x, y)
		want := new(big.Int).Quo(big128(x), big128(y))
		a.Equal(want.String(), big128(quo).String())
	}
	for _, w0 := range boundaryWords {
		for _, w1 := range boundaryWords {
			for _, w2 := range boundaryWords {
				check(U128{w0, w1}, U128{w2, w0})
				check(U128{w0, w1}, U128{w2})
			}
		}
	}
	for i := 0; i < propIterations; i++ {
		x, y := randU128(rnd), randU128(rnd)
		if rnd.Intn(16) == 0 {
			y = U128{}
		}
		check(x, y)
	}
}

func TestU192Add(t *testing.T) {
	a := assert.New(t)
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 192), big.NewInt(1))
	rnd := rand.New(rand.NewSource(5))
	check := func(x, y U192) {
		sum, ok := x.Add(y)
		want := new(big.Int).Add(big192(x), big192(y))
		if want.Cmp(max) > 0 {
			a.False(ok, "%v + %v", x, y)
			return
		}
		a.True(ok, "%v + %v", x, y)
		a.Equal(want.String(), big192(sum).String())
	}
	for _, w0 := range boundaryWords {
		for _, w1 := range boundaryWords {
			check(U192{w0, w1, w0}, U192{w1, w0, w1})
		}
	}
	for i := 0; i < propIterations; i++ {
		check(randU192(rnd), randU192(rnd))
	}
}

func TestU192Sub(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(6))
	check := func(x, y U192) {
		diff, ok := x.Sub(y)
		bx, by := big192(x), big192(y)
		if bx.Cmp(by) < 0 {
			a.False(ok, "%v - %v", x, y)
			return
		}
		a.True(ok, "%v - %v", x, y)
		a.Equal(new(big.Int).Sub(bx, by).String(), big192(diff).String())
	}
	for _, w0 := range boundaryWords {
		for _, w1 := range boundaryWords {
			check(U192{w0, w1, w0}, U192{w1, w0, w1})
		}
	}
	for i := 0; i < propIterations; i++ {
		check(randU192(rnd), randU192(rnd))
	}
}

func TestU192Mul(t *testing.T) {
	a := assert.New(t)
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 192), big.NewInt(1))
	rnd := rand.New(rand.NewSource(7))
	check := func(x, y U192) {
		prod, ok := x.Mul(y)
		want := new(big.Int).Mul(big192(x), big192(y))
		if want.Cmp(max) > 0 {
			a.False(ok, "%v * %v", x, y)
			return
		}
		a.True(ok, "%v * %v", x, y)
		a.Equal(want.String(), big192(prod).String())
	}
	for _, w0 := range boundaryWords {
		for _, w1 := range boundaryWords {
			check(U192{w0, w1}, U192{w1, w0})
			check(U192{w0, 0, w1}, U192{w1})
		}
	}
	for i := 0; i < propIterations; i++ {
		check(randU192(rnd), randU192(rnd))
	}
}

func TestU192Div(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(8))
	check := func(x, y U192) {
		quo, ok := x.Div(y)
		if y.IsZero() {
			a.False(ok, "%v / %v", x, y)
			return
		}
		a.True(ok, "%v / %v", x, y)
		want := new(big.Int).Quo(big192(x), big192(y))
		a.Equal(want.String(), big192(quo).String())
	}
	for _, w0 := range boundaryWords {
		for _, w1 := range boundaryWords {
			for _, w2 := range boundaryWords {
				check(U192{w0, w1, w2}, U192{w2, w1, w0})
				check(U192{w0, w1, w2}, U192{w1, w2})
				check(U192{w0, w1, w2}, U192{w2})
			}
		}
	}
	for i := 0; i < propIterations; i++ {
		x, y := randU192(rnd), randU192(rnd)
		if rnd.Intn(16) == 0 {
			y = U192{}
		}
		check(x, y)
	}
}

func TestString(t *testing.T) {
	a := assert.New(t)
	a.Equal("0", U128{}.String())
	a.Equal("0", U192{}.String())
	a.Equal("1", U128From64(1).String())
	a.Equal("18446744073709551616", U128FromRaw(0, 1).String())
	a.Equal("340282366920938463463374607431768211455",
		U128FromRaw(^uint64(0), ^uint64(0)).String())
	a.Equal("6277101735386680763835789423207666416102355444464034512895",
		U192FromRaw(^uint64(0), ^uint64(0), ^uint64(0)).String())

	rnd := rand.New(rand.NewSource(9))
	for i := 0; i < propIterations; i++ {
		x := randU128(rnd)
		a.Equal(big128(x).String(), x.String())
		y := randU192(rnd)
		a.Equal(big192(y).String(), y.String())
	}
}

func TestNarrowing(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x    U192
		u64  bool
		u128 bool
	}{
		{U192{}, true, true},
		{U192{42}, true, true},
		{U192{^uint64(0)}, true, true},
		{U192{0, 1}, false, true},
		{U192{1, 2}, false, true},
		{U192{0, 0, 1}, false, false},
		{U192{3, 0, 7}, false, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, ok := test.x.Uint64()
			a.Equal(test.u64, ok)
			if ok {
				a.Equal(test.x[0], v)
			}
			w, ok := test.x.U128()
			a.Equal(test.u128, ok)
			if ok {
				a.Equal(U128{test.x[0], test.x[1]}, w)
			}
		})
	}

	v, ok := U128FromRaw(5, 0).Uint64()
	a.True(ok)
	a.Equal(uint64(5), v)
	_, ok = U128FromRaw(5, 1).Uint64()
	a.False(ok)
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(10))
	for i := 0; i < propIterations; i++ {
		x, y := randU128(rnd), randU128(rnd)
		a.Equal(big128(x).Cmp(big128(y)), x.Cmp(y))
		p, q := randU192(rnd), randU192(rnd)
		a.Equal(big192(p).Cmp(big192(q)), p.Cmp(q))
	}
	a.Equal(0, U128From64(7).Cmp(U128From64(7)))
	a.Equal(1, U128FromRaw(0, 1).Cmp(U128From64(^uint64(0))))
	a.Equal(-1, U192From64(1).Cmp(U192FromRaw(0, 0, 1)))
}

func TestRoundTripBig(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < propIterations; i++ {
		x := randU128(rnd)
		a.Equal(x, u128FromBig(big128(x)))
	}
}

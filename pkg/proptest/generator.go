// Package proptest fuzzes the bigint package: it generates random
// values, checks a slate of algebraic properties against them across a
// pool of workers, and reports any violation found. It is the Go-native
// replacement for the ad hoc self-tests a dynamically typed
// implementation would run at import time.
package proptest

import (
	"math/rand/v2"

	"github.com/kuroko-lang/kuroko-bigint/pkg/bigint"
)

// Generator produces random Int values for property checks. Values are
// built exclusively through bigint's exported API (Mul, Add, SetInt64),
// the same way a consumer of the package would construct one, rather
// than through a package-internal shortcut.
type Generator struct {
	rng     *rand.Rand
	maxDigs int
}

// NewGenerator creates a Generator whose values have at most maxDigits
// 31-bit digits of magnitude.
func NewGenerator(rng *rand.Rand, maxDigits int) *Generator {
	if maxDigits < 1 {
		maxDigits = 1
	}
	return &Generator{rng: rng, maxDigs: maxDigits}
}

// digitBase is 2^31, matching bigint's internal digit radix. Generating
// in this base, rather than bit by bit, keeps the random values dense
// (no long runs of zero digits) while still composed purely from public
// operations.
var digitBase = bigint.NewInt64(1 << 31)

// Next returns a random signed Int built from between 1 and g.maxDigs
// random 31-bit digits. A zero leading digit yields a shorter value, and
// the result can be zero.
func (g *Generator) Next() *bigint.Int {
	n := 1 + g.rng.IntN(g.maxDigs)
	v := bigint.New()
	for i := 0; i < n; i++ {
		word := int64(g.rng.Uint32N(1 << 31))
		v.Mul(v, digitBase)
		v.Add(v, bigint.NewInt64(word))
	}
	if g.rng.IntN(2) == 0 {
		v.Neg(v)
	}
	return v
}

// NextNonZero returns a random nonzero Int, resampling zero draws.
func (g *Generator) NextNonZero() *bigint.Int {
	for {
		v := g.Next()
		if v.Sign() != 0 {
			return v
		}
	}
}

// Pair returns two independently generated values.
func (g *Generator) Pair() (*bigint.Int, *bigint.Int) {
	return g.Next(), g.Next()
}

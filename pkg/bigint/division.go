package bigint

import "errors"

// ErrDivByZero is returned by DivMod when the divisor is zero.
var ErrDivByZero = errors.New("bigint: division by zero")

// ErrAliasedDivMod is returned by DivMod when the quotient and remainder
// destinations are the same Int, which this implementation cannot
// support since both are written independently from the same division.
var ErrAliasedDivMod = errors.New("bigint: quotient and remainder destinations must differ")

// divModAbs computes |a| / |b| and |a| % |b| via bit-at-a-time long
// division: shift a trial remainder left one bit at a time, pulling in
// the next bit of |a|, and subtract |b| whenever it fits.
func divModAbs(a, b *Int) (quot, rem *Int) {
	quot = New()
	rem = New()

	n := bitsIn(a)
	for i := n - 1; i >= 0; i-- {
		rem.shiftLeftOneInPlace()
		if bitIsSet(a, i) {
			if rem.width == 0 {
				rem.resize(1)
				rem.digits[0] = 1
			} else {
				rem.digits[0] |= 1
			}
		}
		if rem.CmpAbs(b) >= 0 {
			subMagnitudesInto(rem, rem.Copy(), b)
			setBitImpl(quot, i)
		}
	}
	quot.trim()
	if quot.width != 0 {
		quot.setSign(1)
	}
	return quot, rem
}

// DivMod sets q to a / b and m to a % b using floor-division semantics:
// the remainder always takes the divisor's sign (or is zero), so a == b
// * q + m exactly, for every nonzero b. It returns q, m, and an error if
// b is zero or q and m name the same destination.
func (q *Int) DivMod(a, b *Int, m *Int) (*Int, *Int, error) {
	if q == m {
		return q, m, ErrAliasedDivMod
	}
	if b.width == 0 {
		q.Clear()
		m.Clear()
		return q, m, ErrDivByZero
	}
	if a.width == 0 {
		q.Clear()
		m.Clear()
		return q, m, nil
	}

	quot, rem := divModAbs(a, b)

	negA := a.width < 0
	negB := b.width < 0
	if negA != negB && rem.width != 0 {
		quot.Add(quot, NewInt64(1))
		subMagnitudesInto(rem, b, rem.Copy())
	}

	if negA != negB && quot.width != 0 {
		quot.setSign(-1)
	}
	if negB && rem.width != 0 {
		rem.setSign(-1)
	}

	q.Set(quot)
	m.Set(rem)
	return q, m, nil
}

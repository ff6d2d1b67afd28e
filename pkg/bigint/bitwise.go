package bigint

// Mixed-sign bitwise operators are simulated over two's-complement
// without ever materializing a two's-complement representation: each
// operand is converted digit-by-digit as it is consumed, using a
// running borrow/carry that starts at 1 (the "+1" half of negate-by-
// invert-and-add-one) and propagates forward the same way a ripple
// carry would.

// twosComplementDigit returns the two's-complement digit for raw when
// the source is negative, updating *borrow (which must start at 1 for
// the least-significant digit). For a non-negative source it returns raw
// unchanged and leaves *borrow untouched.
func twosComplementDigit(raw uint32, negative bool, borrow *uint32) uint32 {
	if !negative {
		return raw
	}
	inv := (^raw) & digitMax
	sum := inv + *borrow
	*borrow = sum >> digitBits
	return sum & digitMax
}

// digitAt returns digit i of n's magnitude, or 0 if i is beyond n's
// stored digits.
func digitAt(n *Int, i int) uint32 {
	w := absWidth(n.width)
	if i >= w {
		return 0
	}
	return n.digits[i]
}

// bitwiseOp computes f(a, b) digit-by-digit over the two's-complement
// view of a and b, producing a magnitude-and-sign result: the output is
// negative iff f(signBit(a), signBit(b)) is 1, in which case the
// accumulated digits are converted back from two's-complement by the
// same invert-and-add-one transform run in reverse.
func bitwiseOp(res, a, b *Int, f func(x, y uint32) uint32) {
	negA := a.width < 0
	negB := b.width < 0
	resultNeg := f(b2u(negA), b2u(negB)) == 1

	wa, wb := absWidth(a.width), absWidth(b.width)
	n := wa
	if wb > n {
		n = wb
	}
	if resultNeg {
		n++ // room for a possible extra digit once re-negated
	}

	out := make([]uint32, n)
	var borrowA, borrowB, borrowOut uint32 = 1, 1, 1
	for i := 0; i < n; i++ {
		da := twosComplementDigit(digitAt(a, i), negA, &borrowA)
		db := twosComplementDigit(digitAt(b, i), negB, &borrowB)
		dr := f(da, db) & digitMax
		if resultNeg {
			out[i] = twosComplementDigit(dr, true, &borrowOut)
		} else {
			out[i] = dr
		}
	}

	res.digits = out
	if resultNeg {
		res.width = -n
	} else {
		res.width = n
	}
	res.trim()
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// And sets z = a & b and returns z.
func (z *Int) And(a, b *Int) *Int {
	return z.binOp(a, b, andInto)
}

func andInto(res, a, b *Int) {
	if a.width == 0 || b.width == 0 {
		res.Clear()
		return
	}
	bitwiseOp(res, a, b, func(x, y uint32) uint32 { return x & y })
}

// Or sets z = a | b and returns z.
func (z *Int) Or(a, b *Int) *Int {
	return z.binOp(a, b, orInto)
}

func orInto(res, a, b *Int) {
	if a.width == 0 {
		res.Set(b)
		return
	}
	if b.width == 0 {
		res.Set(a)
		return
	}
	bitwiseOp(res, a, b, func(x, y uint32) uint32 { return x | y })
}

// Xor sets z = a ^ b and returns z.
func (z *Int) Xor(a, b *Int) *Int {
	return z.binOp(a, b, xorInto)
}

func xorInto(res, a, b *Int) {
	if a.width == 0 {
		res.Set(b)
		return
	}
	if b.width == 0 {
		res.Set(a)
		return
	}
	bitwiseOp(res, a, b, func(x, y uint32) uint32 { return x ^ y })
}

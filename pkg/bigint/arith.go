package bigint

// binOp runs f(z, a, b), staging the result in a temporary and swapping
// it into z first when z aliases either source. This is the aliasing-
// safe discipline every binary operation in this package relies on: f
// itself may assume its destination is distinct from both sources.
func (z *Int) binOp(a, b *Int, f func(res, a, b *Int)) *Int {
	if z == a || z == b {
		tmp := new(Int)
		f(tmp, a, b)
		*z = *tmp
		return z
	}
	f(z, a, b)
	return z
}

// Add sets z = a + b and returns z.
func (z *Int) Add(a, b *Int) *Int {
	return z.binOp(a, b, addInto)
}

func addInto(res, a, b *Int) {
	if a.width == 0 {
		res.Set(b)
		return
	}
	if b.width == 0 {
		res.Set(a)
		return
	}

	if (a.width < 0) != (b.width < 0) {
		switch a.CmpAbs(b) {
		case 0:
			res.Clear()
		case 1:
			subMagnitudesInto(res, a, b)
			res.setSign(a.Sign())
		case -1:
			subMagnitudesInto(res, b, a)
			res.setSign(b.Sign())
		}
		return
	}

	addMagnitudesInto(res, a, b)
	res.setSign(a.Sign())
}

// Sub sets z = a - b and returns z.
func (z *Int) Sub(a, b *Int) *Int {
	return z.binOp(a, b, subInto)
}

func subInto(res, a, b *Int) {
	if a.width == 0 {
		res.Set(b)
		if res.width != 0 {
			res.width = -res.width
		}
		return
	}
	if b.width == 0 {
		res.Set(a)
		return
	}

	if (a.width < 0) != (b.width < 0) {
		// Mixed signs: a - b is |a| + |b| with a's sign.
		addMagnitudesInto(res, a, b)
		res.setSign(a.Sign())
		return
	}

	commonSign := a.Sign()
	switch a.CmpAbs(b) {
	case 0:
		res.Clear()
	case 1:
		subMagnitudesInto(res, a, b)
		res.setSign(commonSign)
	case -1:
		subMagnitudesInto(res, b, a)
		res.setSign(-commonSign)
	}
}

// Mul sets z = a * b and returns z.
func (z *Int) Mul(a, b *Int) *Int {
	return z.binOp(a, b, mulInto)
}

func mulInto(res, a, b *Int) {
	if a.width == 0 || b.width == 0 {
		res.Clear()
		return
	}
	mulMagnitudesInto(res, a, b)
	if (a.width < 0) == (b.width < 0) {
		res.setSign(1)
	} else {
		res.setSign(-1)
	}
}

// Abs sets z = |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	if z.width != 0 {
		z.setSign(1)
	}
	return z
}

// Neg sets z = -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.width = -z.width
	return z
}

package bigint

// AddInt64, SubInt64, and MulInt64 are convenience wrappers for mixing a
// *Int with a plain int64, the Go equivalent of the original module's
// macro that accepted either a BigInt or a machine int on the right-hand
// side of an operator.

// AddInt64 sets z = a + v and returns z.
func (z *Int) AddInt64(a *Int, v int64) *Int {
	return z.Add(a, NewInt64(v))
}

// SubInt64 sets z = a - v and returns z.
func (z *Int) SubInt64(a *Int, v int64) *Int {
	return z.Sub(a, NewInt64(v))
}

// MulInt64 sets z = a * v and returns z.
func (z *Int) MulInt64(a *Int, v int64) *Int {
	return z.Mul(a, NewInt64(v))
}

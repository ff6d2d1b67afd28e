package bigint

import "errors"

// ErrNegativeShift is returned by Lsh and Rsh when the shift count is
// negative.
var ErrNegativeShift = errors.New("bigint: negative shift count")

// Lsh sets z = x << k (k >= 0) and returns z, or an error if k is
// negative. Shifting is defined arithmetically: x << k == x * 2^k,
// sign included.
func (z *Int) Lsh(x *Int, k int) (*Int, error) {
	if k < 0 {
		return z, ErrNegativeShift
	}
	if x.width == 0 || k == 0 {
		z.Set(x)
		return z, nil
	}

	pow := New()
	setBitImpl(pow, k)

	tmp := new(Int)
	mulInto(tmp, x, pow)
	z.Set(tmp)
	return z, nil
}

// Rsh sets z = x >> k (k >= 0) and returns z, or an error if k is
// negative. Shifting is arithmetic and floors toward negative infinity,
// matching FloorDiv(x, 2^k).
func (z *Int) Rsh(x *Int, k int) (*Int, error) {
	if k < 0 {
		return z, ErrNegativeShift
	}
	if x.width == 0 || k == 0 {
		z.Set(x)
		return z, nil
	}

	pow := New()
	setBitImpl(pow, k)
	return z.FloorDiv(x, pow)
}

// FloorDiv sets z = floor(a / b) and returns z, or an error if b is
// zero. It is DivMod's quotient with the remainder discarded into a
// scratch value.
func (z *Int) FloorDiv(a, b *Int) (*Int, error) {
	scratch := new(Int)
	if _, _, err := z.DivMod(a, b, scratch); err != nil {
		return z, err
	}
	return z, nil
}

// Mod sets z = a mod b (the floor-division remainder, taking b's sign)
// and returns z, or an error if b is zero.
func (z *Int) Mod(a, b *Int) (*Int, error) {
	scratch := new(Int)
	if _, _, err := scratch.DivMod(a, b, z); err != nil {
		return z, err
	}
	return z, nil
}

// BitLen returns the number of bits required to represent |n|, with
// BitLen of zero being zero.
func (n *Int) BitLen() int {
	return bitsIn(n)
}

// Bit returns the value of bit i (0 or 1) of |n|'s binary magnitude.
// Panics if i is negative.
func (n *Int) Bit(i int) uint {
	if i < 0 {
		panic("bigint: negative bit index")
	}
	if bitIsSet(n, i) {
		return 1
	}
	return 0
}

// SetBit sets bit i of z's magnitude to 1 and returns z, growing z as
// needed. A zero z grows into a positive value. Panics if i is
// negative.
func (z *Int) SetBit(i int) *Int {
	if i < 0 {
		panic("bigint: negative bit index")
	}
	setBitImpl(z, i)
	return z
}

// Package bigint implements an arbitrary-precision signed integer: a
// sign-magnitude value built from 31-bit digits, with schoolbook
// arithmetic, bit-at-a-time floor division, mixed-sign bitwise operators
// simulated over two's-complement, and base 2/8/10/16 string conversion.
//
// The API follows math/big's convention: the receiver of a method is the
// destination, and the destination may alias one or both sources. Every
// binary operation detects that aliasing and stages its result in a
// temporary before swapping it into the receiver, so x.Add(x, y) and
// x.Add(y, x) are both well-defined.
package bigint

// digitBits is the width of one digit. 31, not 32, leaves headroom so a
// sum of two digits plus a carry fits a uint32, and a digit product plus
// carry plus accumulator fits a uint64.
const digitBits = 31

// digitMax is the largest value a single digit may hold (2^31 - 1).
const digitMax uint32 = 1<<digitBits - 1

// Int is an arbitrary-precision signed integer.
//
// width encodes both the sign and the digit count: positive is a
// positive number, negative is a negative number, zero is the integer
// zero. digits holds the magnitude, least-significant digit first, with
// length |width|. The zero value of Int is the canonical integer zero
// and is ready to use.
type Int struct {
	width  int
	digits []uint32
}

// absWidth returns the digit count encoded by a width value.
func absWidth(w int) int {
	if w < 0 {
		return -w
	}
	return w
}

// New returns a new Int set to zero.
func New() *Int {
	return &Int{}
}

// NewInt64 returns a new Int set to v.
func NewInt64(v int64) *Int {
	return new(Int).SetInt64(v)
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	if v == 0 {
		z.Clear()
		return z
	}

	sign := 1
	var abs uint64
	if v < 0 {
		sign = -1
		// v+1 can't overflow (v >= MinInt64), so negate that and add 1
		// back, avoiding the MinInt64 overflow in a direct -v.
		abs = uint64(-(v + 1)) + 1
	} else {
		abs = uint64(v)
	}

	var digs []uint32
	for abs > 0 {
		digs = append(digs, uint32(abs)&digitMax)
		abs >>= digitBits
	}
	z.digits = digs
	z.width = len(digs) * sign
	return z
}

// Set sets z to x and returns z. The copy is deep: z and x never share
// digit storage afterward, even if z == x (a no-op in that case).
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	if x.width == 0 {
		z.Clear()
		return z
	}
	w := absWidth(x.width)
	z.resize(x.width)
	copy(z.digits[:w], x.digits[:w])
	return z
}

// Copy returns a new Int holding a deep copy of z.
func (z *Int) Copy() *Int {
	return new(Int).Set(z)
}

// Clear resets z to the canonical integer zero, releasing its digit
// storage. Clearing an already-zero value is a no-op.
func (z *Int) Clear() {
	z.width = 0
	z.digits = nil
}

// ClearAll clears every value in ns. It is the Go-native equivalent of
// the original's variadic, NULL-terminated release helper.
func ClearAll(ns ...*Int) {
	for _, n := range ns {
		n.Clear()
	}
}

// resize grows or reuses z's digit storage to hold |newWidth| digits and
// sets z.width = newWidth (sign included). newWidth == 0 degenerates to
// Clear. Digits exposed by growth are not zeroed; callers that need
// zeroed storage must do it explicitly (zeroFill, or the zero-fill loop
// in setBitImpl).
func (z *Int) resize(newWidth int) {
	if newWidth == 0 {
		z.Clear()
		return
	}
	w := absWidth(newWidth)
	if cap(z.digits) >= w {
		z.digits = z.digits[:w]
	} else {
		d := make([]uint32, w)
		copy(d, z.digits)
		z.digits = d
	}
	z.width = newWidth
}

// zeroFill sets every digit of z's current magnitude to zero. width is
// left unchanged; used before accumulating a multiplication result.
func (z *Int) zeroFill() {
	w := absWidth(z.width)
	for i := 0; i < w; i++ {
		z.digits[i] = 0
	}
}

// setSign replaces z's sign with sign (one of -1, 0, +1; 0 is only
// meaningful when z is already zero-width).
func (z *Int) setSign(sign int) {
	z.width = absWidth(z.width) * sign
}

// trim shrinks z's width past any leading (most-significant) zero
// digits, collapsing to canonical zero if every digit was zero.
func (z *Int) trim() {
	w := absWidth(z.width)
	redundant := 0
	for i := 0; i < w; i++ {
		if z.digits[w-1-i] == 0 {
			redundant++
		} else {
			break
		}
	}
	if redundant == w {
		z.Clear()
		return
	}
	if redundant > 0 {
		sign := 1
		if z.width < 0 {
			sign = -1
		}
		z.resize((w - redundant) * sign)
	}
}

// Sign returns -1, 0, or +1 according to whether n is negative, zero, or
// positive.
func (n *Int) Sign() int {
	switch {
	case n.width < 0:
		return -1
	case n.width > 0:
		return 1
	default:
		return 0
	}
}

// String renders n in decimal with no prefix, satisfying fmt.Stringer.
func (n *Int) String() string {
	return n.Format(10, "")
}

package bigint

// Cmp compares a and b and returns -1, 0, or +1 depending on whether a <
// b, a == b, or a > b. Width compares first (larger width is greater,
// since width carries both sign and magnitude rank); on equal width the
// magnitudes compare most-significant digit first, with the result
// inverted when both operands are negative.
func (a *Int) Cmp(b *Int) int {
	if a.width != b.width {
		if a.width > b.width {
			return 1
		}
		return -1
	}
	w := absWidth(a.width)
	negative := a.width < 0
	for i := w - 1; i >= 0; i-- {
		switch {
		case a.digits[i] > b.digits[i]:
			if negative {
				return -1
			}
			return 1
		case a.digits[i] < b.digits[i]:
			if negative {
				return 1
			}
			return -1
		}
	}
	return 0
}

// CmpAbs compares |a| and |b|, ignoring sign.
func (a *Int) CmpAbs(b *Int) int {
	aw, bw := absWidth(a.width), absWidth(b.width)
	if aw != bw {
		if aw > bw {
			return 1
		}
		return -1
	}
	for i := aw - 1; i >= 0; i-- {
		switch {
		case a.digits[i] > b.digits[i]:
			return 1
		case a.digits[i] < b.digits[i]:
			return -1
		}
	}
	return 0
}

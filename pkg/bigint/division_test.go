package bigint

import "testing"

func TestDivModFloorSemantics(t *testing.T) {
	cases := []struct {
		a, b     int64
		quot, rem int64
	}{
		{2325, -2, -1163, -1},
		{5, 7, 0, 5},
		{-5, 7, -1, 2},
		{5, -7, -1, -2},
		{-5, -7, 0, -5},
		{42, 6, 7, 0},
		{-42, 6, -7, 0},
		{0, 5, 0, 0},
	}
	for _, c := range cases {
		a := NewInt64(c.a)
		b := NewInt64(c.b)
		q, m := New(), New()
		if _, _, err := q.DivMod(a, b, m); err != nil {
			t.Fatalf("DivMod(%d, %d): %v", c.a, c.b, err)
		}
		if q.Int64() != c.quot || m.Int64() != c.rem {
			t.Errorf("DivMod(%d, %d) = (%d, %d), want (%d, %d)",
				c.a, c.b, q.Int64(), m.Int64(), c.quot, c.rem)
		}

		// a == b*q + m for every nonzero b.
		check := new(Int).Mul(b, q)
		check.Add(check, m)
		if check.Int64() != c.a {
			t.Errorf("b*q+m = %d, want %d (a=%d b=%d)", check.Int64(), c.a, c.a, c.b)
		}
	}
}

func TestDivModByZero(t *testing.T) {
	a := NewInt64(10)
	zero := New()
	q, m := New(), New()
	_, _, err := q.DivMod(a, zero, m)
	if err == nil {
		t.Fatal("DivMod by zero: want error, got nil")
	}
	if q.Sign() != 0 || m.Sign() != 0 {
		t.Fatalf("DivMod by zero should clear q and m, got q=%s m=%s", q, m)
	}
}

func TestDivModAliasedDestinations(t *testing.T) {
	a := NewInt64(10)
	b := NewInt64(3)
	same := New()
	_, _, err := same.DivMod(a, b, same)
	if err != ErrAliasedDivMod {
		t.Fatalf("DivMod(q == m): want ErrAliasedDivMod, got %v", err)
	}
}

// TestDivModAliasedWithOperands checks that q or m aliasing a or b (as
// opposed to q aliasing m, which DivMod rejects) still produces the
// same quotient and remainder as distinct destinations.
func TestDivModAliasedWithOperands(t *testing.T) {
	const av, bv = 17, 5

	wantQ, wantM := New(), New()
	if _, _, err := wantQ.DivMod(NewInt64(av), NewInt64(bv), wantM); err != nil {
		t.Fatal(err)
	}

	qA, mA := NewInt64(av), New()
	if _, _, err := qA.DivMod(qA, NewInt64(bv), mA); err != nil {
		t.Fatal(err)
	}
	if qA.Cmp(wantQ) != 0 || mA.Cmp(wantM) != 0 {
		t.Errorf("DivMod(q==a): q=%s m=%s, want q=%s m=%s", qA, mA, wantQ, wantM)
	}

	qB, mB := NewInt64(bv), New()
	if _, _, err := qB.DivMod(NewInt64(av), qB, mB); err != nil {
		t.Fatal(err)
	}
	if qB.Cmp(wantQ) != 0 || mB.Cmp(wantM) != 0 {
		t.Errorf("DivMod(q==b): q=%s m=%s, want q=%s m=%s", qB, mB, wantQ, wantM)
	}

	qC, mC := New(), NewInt64(av)
	if _, _, err := qC.DivMod(mC, NewInt64(bv), mC); err != nil {
		t.Fatal(err)
	}
	if qC.Cmp(wantQ) != 0 || mC.Cmp(wantM) != 0 {
		t.Errorf("DivMod(m==a): q=%s m=%s, want q=%s m=%s", qC, mC, wantQ, wantM)
	}

	qD, mD := New(), NewInt64(bv)
	if _, _, err := qD.DivMod(NewInt64(av), mD, mD); err != nil {
		t.Fatal(err)
	}
	if qD.Cmp(wantQ) != 0 || mD.Cmp(wantM) != 0 {
		t.Errorf("DivMod(m==b): q=%s m=%s, want q=%s m=%s", qD, mD, wantQ, wantM)
	}
}

func TestDivModLargeValues(t *testing.T) {
	a, _ := Parse("123456789012345678901234567890")
	b, _ := Parse("987654321")
	q, m := New(), New()
	if _, _, err := q.DivMod(a, b, m); err != nil {
		t.Fatal(err)
	}
	check := new(Int).Mul(b, q)
	check.Add(check, m)
	if check.Cmp(a) != 0 {
		t.Fatalf("b*q+m = %s, want %s", check, a)
	}
	if m.CmpAbs(b) >= 0 {
		t.Fatalf("|remainder| = %s should be smaller than |divisor| = %s", m, b)
	}
}

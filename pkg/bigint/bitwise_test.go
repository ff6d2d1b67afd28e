package bigint

import "testing"

func TestBitwiseMixedSign(t *testing.T) {
	cases := []struct {
		op         string
		a, b, want int64
	}{
		{"xor", -1, -1, 0},
		{"and", -1, -1, -1},
		{"or", -1, -1, -1},
		{"xor", -5, 0, -5},
		{"or", -5, 0, -5},
		{"and", -5, 0, 0},
		{"and", 12, 10, 8},
		{"or", 12, 10, 14},
		{"xor", 12, 10, 6},
		{"and", -1, 5, 5},
		{"or", -8, 3, -5},
		{"xor", -1, 0, -1},
	}
	for _, c := range cases {
		a := NewInt64(c.a)
		b := NewInt64(c.b)
		var got *Int
		switch c.op {
		case "and":
			got = new(Int).And(a, b)
		case "or":
			got = new(Int).Or(a, b)
		case "xor":
			got = new(Int).Xor(a, b)
		}
		if got.Int64() != c.want {
			t.Errorf("%s(%d, %d) = %d, want %d", c.op, c.a, c.b, got.Int64(), c.want)
		}
	}
}

// TestBitwiseAliasing checks, for And, Or, and Xor, that f(a,a,b),
// f(b,a,b), and f(a,a,a) each match the result of a distinct
// destination, per the aliasing-safety property every binary op
// promises.
func TestBitwiseAliasing(t *testing.T) {
	type binOp func(z, a, b *Int) *Int
	ops := []struct {
		name string
		op   binOp
	}{
		{"And", (*Int).And},
		{"Or", (*Int).Or},
		{"Xor", (*Int).Xor},
	}
	const av, bv = -6, 11

	for _, o := range ops {
		want := o.op(new(Int), NewInt64(av), NewInt64(bv))

		destA := NewInt64(av)
		o.op(destA, destA, NewInt64(bv))
		if destA.Cmp(want) != 0 {
			t.Errorf("%s(a, a, b) = %s, want %s", o.name, destA, want)
		}

		destB := NewInt64(bv)
		o.op(destB, NewInt64(av), destB)
		if destB.Cmp(want) != 0 {
			t.Errorf("%s(b, a, b) = %s, want %s", o.name, destB, want)
		}

		wantSame := o.op(new(Int), NewInt64(av), NewInt64(av))
		same := NewInt64(av)
		o.op(same, same, same)
		if same.Cmp(wantSame) != 0 {
			t.Errorf("%s(a, a, a) = %s, want %s", o.name, same, wantSame)
		}
	}
}

func TestShiftAndBit(t *testing.T) {
	one := NewInt64(1)
	shifted, err := new(Int).Lsh(one, 40)
	if err != nil {
		t.Fatal(err)
	}
	if shifted.BitLen() != 41 {
		t.Errorf("BitLen(1<<40) = %d, want 41", shifted.BitLen())
	}
	if shifted.Bit(40) != 1 {
		t.Errorf("Bit(40) of 1<<40 = %d, want 1", shifted.Bit(40))
	}
	if shifted.Bit(39) != 0 {
		t.Errorf("Bit(39) of 1<<40 = %d, want 0", shifted.Bit(39))
	}

	back, err := new(Int).Rsh(shifted, 40)
	if err != nil {
		t.Fatal(err)
	}
	if back.Int64() != 1 {
		t.Errorf("Rsh(1<<40, 40) = %d, want 1", back.Int64())
	}
}

func TestRshFloors(t *testing.T) {
	neg := NewInt64(-1)
	got, err := new(Int).Rsh(neg, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Int64() != -1 {
		t.Errorf("Rsh(-1, 5) = %d, want -1 (floor toward -inf)", got.Int64())
	}
}

func TestNegativeShiftErrors(t *testing.T) {
	x := NewInt64(5)
	if _, err := new(Int).Lsh(x, -1); err != ErrNegativeShift {
		t.Errorf("Lsh(x, -1): want ErrNegativeShift, got %v", err)
	}
	if _, err := new(Int).Rsh(x, -1); err != ErrNegativeShift {
		t.Errorf("Rsh(x, -1): want ErrNegativeShift, got %v", err)
	}
}

func TestModAndFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, wantQ, wantM int64
	}{
		{2325, -2, -1163, -1},
		{5, 7, 0, 5},
		{-5, 7, -1, 2},
		{5, -7, -1, -2},
		{-5, -7, 0, -5},
	}
	for _, c := range cases {
		q, err := new(Int).FloorDiv(NewInt64(c.a), NewInt64(c.b))
		if err != nil {
			t.Fatalf("FloorDiv(%d, %d): %v", c.a, c.b, err)
		}
		if q.Int64() != c.wantQ {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, q.Int64(), c.wantQ)
		}
		m, err := new(Int).Mod(NewInt64(c.a), NewInt64(c.b))
		if err != nil {
			t.Fatalf("Mod(%d, %d): %v", c.a, c.b, err)
		}
		if m.Int64() != c.wantM {
			t.Errorf("Mod(%d, %d) = %d, want %d", c.a, c.b, m.Int64(), c.wantM)
		}
	}
}

func TestModAndFloorDivByZero(t *testing.T) {
	a := NewInt64(10)
	zero := New()
	if _, err := new(Int).Mod(a, zero); err != ErrDivByZero {
		t.Errorf("Mod(10, 0): want ErrDivByZero, got %v", err)
	}
	if _, err := new(Int).FloorDiv(a, zero); err != ErrDivByZero {
		t.Errorf("FloorDiv(10, 0): want ErrDivByZero, got %v", err)
	}
}

func TestSetBitGrows(t *testing.T) {
	z := New()
	z.SetBit(100)
	if z.Sign() != 1 {
		t.Fatalf("SetBit on zero should produce a positive value, got sign %d", z.Sign())
	}
	if z.Bit(100) != 1 {
		t.Fatalf("Bit(100) = %d, want 1", z.Bit(100))
	}
	if z.BitLen() != 101 {
		t.Fatalf("BitLen() = %d, want 101", z.BitLen())
	}
}

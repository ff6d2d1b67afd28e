package proptest

import (
	"fmt"

	"github.com/kuroko-lang/kuroko-bigint/pkg/bigint"
)

// Property checks one algebraic law against a freshly generated pair of
// operands. It returns a non-empty failure description when the law
// does not hold.
type Property struct {
	Name  string
	Check func(a, b *bigint.Int) string
}

// Catalog lists every property the fuzzer exercises: commutativity of
// Add and Mul, the Add/Sub inverse relationship, distributivity of Mul
// over Add, the DivMod floor-division identity, Cmp's consistency with
// the sign of Sub, De Morgan's laws for And and Or, Xor being its own
// inverse, and Abs never being negative.
var Catalog = []Property{
	{"add-commutative", checkAddCommutative},
	{"add-sub-inverse", checkAddSubInverse},
	{"mul-commutative", checkMulCommutative},
	{"mul-distributes-over-add", checkMulDistributesOverAdd},
	{"divmod-identity", checkDivModIdentity},
	{"cmp-consistent-with-sub", checkCmpConsistentWithSub},
	{"bitwise-de-morgan-and", checkDeMorganAnd},
	{"bitwise-de-morgan-or", checkDeMorganOr},
	{"xor-self-inverse", checkXorSelfInverse},
	{"abs-nonnegative", checkAbsNonNegative},
}

func checkAddCommutative(a, b *bigint.Int) string {
	lhs := new(bigint.Int).Add(a, b)
	rhs := new(bigint.Int).Add(b, a)
	if lhs.Cmp(rhs) != 0 {
		return fmt.Sprintf("a+b = %s, b+a = %s (a=%s b=%s)", lhs, rhs, a, b)
	}
	return ""
}

func checkAddSubInverse(a, b *bigint.Int) string {
	sum := new(bigint.Int).Add(a, b)
	back := new(bigint.Int).Sub(sum, b)
	if back.Cmp(a) != 0 {
		return fmt.Sprintf("(a+b)-b = %s, want a = %s (b=%s)", back, a, b)
	}
	return ""
}

func checkMulCommutative(a, b *bigint.Int) string {
	lhs := new(bigint.Int).Mul(a, b)
	rhs := new(bigint.Int).Mul(b, a)
	if lhs.Cmp(rhs) != 0 {
		return fmt.Sprintf("a*b = %s, b*a = %s (a=%s b=%s)", lhs, rhs, a, b)
	}
	return ""
}

func checkMulDistributesOverAdd(a, b *bigint.Int) string {
	c := bigint.NewInt64(7)
	lhs := new(bigint.Int).Mul(a, new(bigint.Int).Add(b, c))
	rhs := new(bigint.Int).Add(new(bigint.Int).Mul(a, b), new(bigint.Int).Mul(a, c))
	if lhs.Cmp(rhs) != 0 {
		return fmt.Sprintf("a*(b+7) = %s, a*b+a*7 = %s (a=%s b=%s)", lhs, rhs, a, b)
	}
	return ""
}

func checkDivModIdentity(a, b *bigint.Int) string {
	if b.Sign() == 0 {
		return ""
	}
	q, m := bigint.New(), bigint.New()
	if _, _, err := q.DivMod(a, b, m); err != nil {
		return fmt.Sprintf("DivMod(%s, %s): %v", a, b, err)
	}
	if m.CmpAbs(b) >= 0 {
		return fmt.Sprintf("|remainder| %s not smaller than |divisor| %s", m, b)
	}
	check := new(bigint.Int).Mul(b, q)
	check.Add(check, m)
	if check.Cmp(a) != 0 {
		return fmt.Sprintf("b*q+m = %s, want a = %s (b=%s)", check, a, b)
	}
	return ""
}

func checkCmpConsistentWithSub(a, b *bigint.Int) string {
	diff := new(bigint.Int).Sub(a, b)
	want := diff.Sign()
	got := a.Cmp(b)
	if (want < 0) != (got < 0) || (want > 0) != (got > 0) || (want == 0) != (got == 0) {
		return fmt.Sprintf("Cmp(a,b) = %d but sign(a-b) = %d (a=%s b=%s)", got, want, a, b)
	}
	return ""
}

func checkDeMorganAnd(a, b *bigint.Int) string {
	lhs := new(bigint.Int).Neg(new(bigint.Int).Add(new(bigint.Int).And(a, b), bigint.NewInt64(1)))
	notA := new(bigint.Int).Neg(new(bigint.Int).Add(a, bigint.NewInt64(1)))
	notB := new(bigint.Int).Neg(new(bigint.Int).Add(b, bigint.NewInt64(1)))
	rhs := new(bigint.Int).Or(notA, notB)
	if lhs.Cmp(rhs) != 0 {
		return fmt.Sprintf("~(a&b) = %s, ~a|~b = %s (a=%s b=%s)", lhs, rhs, a, b)
	}
	return ""
}

func checkDeMorganOr(a, b *bigint.Int) string {
	lhs := new(bigint.Int).Neg(new(bigint.Int).Add(new(bigint.Int).Or(a, b), bigint.NewInt64(1)))
	notA := new(bigint.Int).Neg(new(bigint.Int).Add(a, bigint.NewInt64(1)))
	notB := new(bigint.Int).Neg(new(bigint.Int).Add(b, bigint.NewInt64(1)))
	rhs := new(bigint.Int).And(notA, notB)
	if lhs.Cmp(rhs) != 0 {
		return fmt.Sprintf("~(a|b) = %s, ~a&~b = %s (a=%s b=%s)", lhs, rhs, a, b)
	}
	return ""
}

func checkXorSelfInverse(a, b *bigint.Int) string {
	once := new(bigint.Int).Xor(a, b)
	twice := new(bigint.Int).Xor(once, b)
	if twice.Cmp(a) != 0 {
		return fmt.Sprintf("(a^b)^b = %s, want a = %s (b=%s)", twice, a, b)
	}
	return ""
}

func checkAbsNonNegative(a, b *bigint.Int) string {
	_ = b
	if new(bigint.Int).Abs(a).Sign() < 0 {
		return fmt.Sprintf("Abs(%s) is negative", a)
	}
	return ""
}

package ops

import (
	"fmt"

	"github.com/kuroko-lang/kuroko-bigint/pkg/bigint"
)

// Eval applies op to its operands and returns the resulting value. For
// Cmp, the result is encoded as an Int holding -1, 0, or 1. For Neg and
// Abs, b is ignored. For Lsh and Rsh, b must hold a non-negative value
// of at most 31 bits (the shift count).
func Eval(op OpCode, a, b *bigint.Int) (*bigint.Int, error) {
	if int(op) < 0 || op >= OpCodeCount {
		return nil, fmt.Errorf("ops: unknown opcode %d", op)
	}
	if Catalog[op].Arity == Binary && b == nil {
		return nil, fmt.Errorf("ops: opcode %d (%s) is binary, got no second operand", op, Catalog[op].Symbol)
	}

	z := bigint.New()
	switch op {
	case Add:
		return z.Add(a, b), nil
	case Sub:
		return z.Sub(a, b), nil
	case Mul:
		return z.Mul(a, b), nil
	case Div:
		scratch := bigint.New()
		if _, _, err := z.DivMod(a, b, scratch); err != nil {
			return nil, err
		}
		return z, nil
	case Mod:
		return z.Mod(a, b)
	case And:
		return z.And(a, b), nil
	case Or:
		return z.Or(a, b), nil
	case Xor:
		return z.Xor(a, b), nil
	case Lsh:
		k, err := shiftCount(b)
		if err != nil {
			return nil, err
		}
		return z.Lsh(a, k)
	case Rsh:
		k, err := shiftCount(b)
		if err != nil {
			return nil, err
		}
		return z.Rsh(a, k)
	case Neg:
		return z.Neg(a), nil
	case Abs:
		return z.Abs(a), nil
	case Cmp:
		return bigint.NewInt64(int64(a.Cmp(b))), nil
	default:
		return nil, fmt.Errorf("ops: opcode %d has no dispatcher entry", op)
	}
}

func shiftCount(n *bigint.Int) (int, error) {
	if n.Sign() < 0 {
		return 0, bigint.ErrNegativeShift
	}
	if n.BitLen() > 31 {
		return 0, fmt.Errorf("ops: shift count %s too large", n)
	}
	return int(n.Uint32()), nil
}

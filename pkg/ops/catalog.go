// Package ops catalogs the binary and unary operators the calculator
// front end exposes, and dispatches a named operator to the matching
// bigint method. cmd/bigcalc's calc and selftest commands use it; the
// proptest fuzzer calls bigint directly and does not go through it.
package ops

// OpCode identifies one operator the calculator understands.
type OpCode int

const (
	Add OpCode = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	Xor
	Lsh
	Rsh
	Neg
	Abs
	Cmp
	OpCodeCount
)

// Arity is how many operands an operator consumes.
type Arity int

const (
	Unary  Arity = 1
	Binary Arity = 2
)

// Info describes one operator: its display symbol, arity, and whether
// its second operand is a small shift count rather than a full Int.
type Info struct {
	Symbol     string
	Arity      Arity
	ShiftCount bool // true for Lsh/Rsh, whose second operand is a bit count
}

// Catalog maps every OpCode to its Info. Indexed directly by OpCode,
// mirroring the instruction catalog's table-by-enum layout.
var Catalog = [OpCodeCount]Info{
	Add: {Symbol: "+", Arity: Binary},
	Sub: {Symbol: "-", Arity: Binary},
	Mul: {Symbol: "*", Arity: Binary},
	Div: {Symbol: "//", Arity: Binary},
	Mod: {Symbol: "%", Arity: Binary},
	And: {Symbol: "&", Arity: Binary},
	Or:  {Symbol: "|", Arity: Binary},
	Xor: {Symbol: "^", Arity: Binary},
	Lsh: {Symbol: "<<", Arity: Binary, ShiftCount: true},
	Rsh: {Symbol: ">>", Arity: Binary, ShiftCount: true},
	Neg: {Symbol: "neg", Arity: Unary},
	Abs: {Symbol: "abs", Arity: Unary},
	Cmp: {Symbol: "cmp", Arity: Binary},
}

// symbolToOp is built once from Catalog so Lookup doesn't scan linearly.
var symbolToOp map[string]OpCode

func init() {
	symbolToOp = make(map[string]OpCode, OpCodeCount)
	for op := OpCode(0); op < OpCodeCount; op++ {
		if _, exists := symbolToOp[Catalog[op].Symbol]; exists {
			continue
		}
		symbolToOp[Catalog[op].Symbol] = op
	}
}

// Lookup returns the OpCode for a symbol (e.g. "+", "<<", "neg") and
// whether it was found. Every catalog entry has a distinct symbol, so
// Lookup never has to arbitrate a collision.
func Lookup(symbol string) (OpCode, bool) {
	op, ok := symbolToOp[symbol]
	return op, ok
}

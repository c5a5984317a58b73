package operand

import (
	"fmt"
	"math"
)

// Op is a binary arithmetic operator.
type Op uint8

// Arithmetic operators.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

var opSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpMod: "%",
}

func (op Op) String() string {
	if int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

func (op Op) commutative() bool { return op == OpAdd || op == OpMul }

func (op Op) eval(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpMod:
		return math.Mod(a, b)
	}
	panic(fmt.Sprintf("invalid operator %v", op))
}

// Apply computes lhs op rhs.
//
// A zero divisor fails first. The double precision result is then checked
// against lhs's limits, even when rhs is the more precise operand and the
// operation ends up carried out in its type. When rhs is more precise,
// commutative operators swap their operands and non-commutative ones rebuild
// lhs in rhs's type before being applied again. The result has the type of
// whichever operand is on the left once that is resolved.
func Apply(op Op, lhs, rhs Operand) (Operand, error) {
	if (op == OpDiv || op == OpMod) && rhs.val == 0 {
		return Operand{}, fmt.Errorf("%w: (%v %v %v)", ErrDivisionByZero, lhs, op, rhs)
	}

	r := op.eval(lhs.val, rhs.val)
	if min, max := lhs.typ.Limits(); r < min {
		return Operand{}, fmt.Errorf("%w: (%v %v %v) < %v", ErrUnderflow, lhs, op, rhs, formatLimit(min))
	} else if r > max {
		return Operand{}, fmt.Errorf("%w: (%v %v %v) > %v", ErrOverflow, lhs, op, rhs, formatLimit(max))
	}

	if t, widen := promote(lhs.typ, rhs.typ); widen {
		if op.commutative() {
			return Apply(op, rhs, lhs)
		}
		return Apply(op, newOperand(t, lhs.val), rhs)
	}
	return newOperand(lhs.typ, r), nil
}

// Add returns o + rhs.
func (o Operand) Add(rhs Operand) (Operand, error) { return Apply(OpAdd, o, rhs) }

// Sub returns o - rhs.
func (o Operand) Sub(rhs Operand) (Operand, error) { return Apply(OpSub, o, rhs) }

// Mul returns o * rhs.
func (o Operand) Mul(rhs Operand) (Operand, error) { return Apply(OpMul, o, rhs) }

// Div returns o / rhs.
func (o Operand) Div(rhs Operand) (Operand, error) { return Apply(OpDiv, o, rhs) }

// Mod returns the floating point remainder of o / rhs, whose sign follows o.
func (o Operand) Mod(rhs Operand) (Operand, error) { return Apply(OpMod, o, rhs) }

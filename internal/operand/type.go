package operand

import (
	"fmt"
	"math"

	"github.com/jcorbin/avm/internal/token"
)

// Type tags an operand's numeric representation. Constants are ordered by
// increasing precision and promotion compares them directly.
type Type uint8

// Operand types, in precision order.
const (
	Int8 Type = iota
	Int16
	Int32
	Float
	Double
)

// Types lists every operand type in precision order.
var Types = [...]Type{Int8, Int16, Int32, Float, Double}

var typeNames = [...]string{
	Int8:   "int8",
	Int16:  "int16",
	Int32:  "int32",
	Float:  "float",
	Double: "double",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Integral returns true for the integer types.
func (t Type) Integral() bool { return t <= Int32 }

// Limits returns the lowest and highest values representable by t.
func (t Type) Limits() (min, max float64) {
	switch t {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int32:
		return math.MinInt32, math.MaxInt32
	case Float:
		return -math.MaxFloat32, math.MaxFloat32
	case Double:
		return -math.MaxFloat64, math.MaxFloat64
	}
	panic(fmt.Sprintf("invalid operand type %v", t))
}

// TypeOfKind maps a type keyword token kind to its operand type.
func TypeOfKind(kind token.Kind) (Type, bool) {
	switch kind {
	case token.INT8:
		return Int8, true
	case token.INT16:
		return Int16, true
	case token.INT32:
		return Int32, true
	case token.FLOAT:
		return Float, true
	case token.DOUBLE:
		return Double, true
	}
	return 0, false
}

// promote decides the type an operation between lhs and rhs is carried out
// in; widen is true when that is rhs's type rather than lhs's.
func promote(lhs, rhs Type) (t Type, widen bool) {
	if rhs > lhs {
		return rhs, true
	}
	return lhs, false
}

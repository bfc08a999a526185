/*
 * midas
 *
 * Copyright 2026 The midas authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package value implements the midas runtime value system: the tagged
Value union, truthiness, equality, ordering, arithmetic coercion, and
to-string conversion (spec §4.4).
*/
package value

import (
	"fmt"
	"strconv"

	"github.com/formerly-a-trickster/midas/util"
)

/*
Kind is the closed set of runtime value tags, ordered the way spec §4.4
orders them for promotion: Nil < Bool < Int < Double < String < Function.
*/
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindFunction
)

/*
String names a Kind, for diagnostics.
*/
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

/*
Function is a first-class function value: its declared name, ordered
parameter names, and a reference to its body statement. The body
reference is shared with the AST and outlives any single call (spec §3).
*/
type Function struct {
	Name   string
	Params []string
	Body   interface{} // parser.Stmt; interface{} to avoid value -> parser import cycle
}

/*
Value is the tagged runtime value union (spec §3). Only the field
matching Kind is meaningful.
*/
type Value struct {
	Kind Kind

	boolVal   bool
	intVal    int64
	doubleVal float64
	strVal    string
	fnVal     *Function
}

/*
Nil is the singular nil value.
*/
var Nil = Value{Kind: KindNil}

/*
Bool constructs a boolean value.
*/
func Bool(b bool) Value {
	return Value{Kind: KindBool, boolVal: b}
}

/*
Int constructs a 64-bit signed integer value.
*/
func Int(i int64) Value {
	return Value{Kind: KindInt, intVal: i}
}

/*
Double constructs an IEEE 754 binary64 value.
*/
func Double(d float64) Value {
	return Value{Kind: KindDouble, doubleVal: d}
}

/*
String constructs a string value.
*/
func String(s string) Value {
	return Value{Kind: KindString, strVal: s}
}

/*
Func constructs a function value.
*/
func Func(fn *Function) Value {
	return Value{Kind: KindFunction, fnVal: fn}
}

/*
AsBool returns the boolean payload. Only valid when Kind == KindBool.
*/
func (v Value) AsBool() bool { return v.boolVal }

/*
AsInt returns the integer payload. Only valid when Kind == KindInt.
*/
func (v Value) AsInt() int64 { return v.intVal }

/*
AsDouble returns the double payload. Only valid when Kind == KindDouble.
*/
func (v Value) AsDouble() float64 { return v.doubleVal }

/*
AsString returns the string payload. Only valid when Kind == KindString.
*/
func (v Value) AsString() string { return v.strVal }

/*
AsFunction returns the function payload. Only valid when
Kind == KindFunction.
*/
func (v Value) AsFunction() *Function { return v.fnVal }

/*
IsNumeric reports whether v is an Int or a Double.
*/
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindDouble
}

/*
Truthy reports whether v is truthy. Only Bool(false) is falsey; every
other value, including Nil, Int(0), 0.0 and "", is truthy (spec §4.4).
*/
func (v Value) Truthy() bool {
	return !(v.Kind == KindBool && !v.boolVal)
}

/*
asDouble returns v promoted to float64. Only valid for numeric v.
*/
func (v Value) asDouble() float64 {
	if v.Kind == KindInt {
		return float64(v.intVal)
	}
	return v.doubleVal
}

// Equality and ordering
// =====================

/*
Equal implements spec §4.4 equality: same tag and same content, or both
numeric after promoting the narrower to Double. Nil equals only Nil.
*/
func (v Value) Equal(other Value) bool {
	if v.IsNumeric() && other.IsNumeric() {
		return v.asDouble() == other.asDouble()
	}

	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindString:
		return v.strVal == other.strVal
	case KindFunction:
		return v.fnVal == other.fnVal
	default:
		return false
	}
}

/*
Compare implements spec §4.4 ordering. Defined only for two operands of
the same tag among {Int, Double, String} or both numeric (promoting).
ok is false when the operands are not orderable.
*/
func (v Value) Compare(other Value) (cmp int, ok bool) {
	if v.IsNumeric() && other.IsNumeric() {
		a, b := v.asDouble(), other.asDouble()
		return compareFloat(a, b), true
	}

	if v.Kind == KindString && other.Kind == KindString {
		switch {
		case v.strVal < other.strVal:
			return -1, true
		case v.strVal > other.strVal:
			return 1, true
		default:
			return 0, true
		}
	}

	return 0, false
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Arithmetic (spec §4.4 "Adapt" and "Arithmetic")
// ================================================

/*
Add implements "+". Both operands must be numeric.
*/
func Add(a, b Value) (Value, error) {
	return numericOp(a, b,
		func(x, y int64) int64 { return x + y },
		func(x, y float64) float64 { return x + y })
}

/*
Sub implements "-".
*/
func Sub(a, b Value) (Value, error) {
	return numericOp(a, b,
		func(x, y int64) int64 { return x - y },
		func(x, y float64) float64 { return x - y })
}

/*
Mul implements "*".
*/
func Mul(a, b Value) (Value, error) {
	return numericOp(a, b,
		func(x, y int64) int64 { return x * y },
		func(x, y float64) float64 { return x * y })
}

/*
numericOp adapts a and b to their common numeric domain (spec §4.4
"Adapt") and applies intOp or floatOp accordingly.
*/
func numericOp(a, b Value, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Value{}, util.ErrTypeMismatch
	}

	if a.Kind == KindInt && b.Kind == KindInt {
		return Int(intOp(a.intVal, b.intVal)), nil
	}

	return Double(floatOp(a.asDouble(), b.asDouble())), nil
}

/*
Div implements true division "/": both operands numeric, cast to
Double, divide. Division by zero follows IEEE 754 (±Inf or NaN); no
separate error (spec §4.4).
*/
func Div(a, b Value) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Value{}, util.ErrTypeMismatch
	}
	return Double(a.asDouble() / b.asDouble()), nil
}

/*
IntDiv implements integer division "//": adapts operands; truncates a
Double result toward zero into an Int; Int/Int performs integer
division. A zero divisor in the Int domain raises DivideByZero.
*/
func IntDiv(a, b Value) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Value{}, util.ErrTypeMismatch
	}

	if a.Kind == KindInt && b.Kind == KindInt {
		if b.intVal == 0 {
			return Value{}, util.ErrDivideByZero
		}
		return Int(a.intVal / b.intVal), nil
	}

	return Int(int64(a.asDouble() / b.asDouble())), nil
}

/*
Mod implements "%": both operands must be Int; remainder follows Go's
integer remainder for negative operands (spec §9 integer overflow note
and §4.4 modulo note).
*/
func Mod(a, b Value) (Value, error) {
	if a.Kind != KindInt || b.Kind != KindInt {
		return Value{}, util.ErrTypeMismatch
	}
	if b.intVal == 0 {
		return Value{}, util.ErrDivideByZero
	}
	return Int(a.intVal % b.intVal), nil
}

/*
Neg implements unary "-": negates a numeric value, preserving its Kind.
*/
func Neg(a Value) (Value, error) {
	switch a.Kind {
	case KindInt:
		return Int(-a.intVal), nil
	case KindDouble:
		return Double(-a.doubleVal), nil
	default:
		return Value{}, util.ErrTypeMismatch
	}
}

/*
Not implements unary "!": logical negation of truthiness.
*/
func Not(a Value) Value {
	return Bool(!a.Truthy())
}

// To-string conversion (spec §4.4, used by print)
// =================================================

/*
String returns the canonical textual form of v, used implicitly only by
print (spec §4.4).
*/
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.intVal, 10)
	case KindDouble:
		return fmt.Sprintf("%f", v.doubleVal)
	case KindString:
		return v.strVal
	case KindFunction:
		return fmt.Sprintf("<fun %s>", v.fnVal.Name)
	default:
		return "<invalid value>"
	}
}

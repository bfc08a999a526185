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
Package interpreter implements the midas tree-walking evaluator (spec
§4.6): statement execution and expression evaluation over a parsed
Program, dispatching on concrete AST node types with a type switch
rather than a visitor-per-kind interface (spec §4.2 design note).
*/
package interpreter

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/krotik/common/errorutil"

	"github.com/formerly-a-trickster/midas/config"
	"github.com/formerly-a-trickster/midas/parser"
	"github.com/formerly-a-trickster/midas/scope"
	"github.com/formerly-a-trickster/midas/util"
	"github.com/formerly-a-trickster/midas/value"
)

/*
errBreak signals an executing break statement. It is caught by the
nearest enclosing loop and never observed outside this package (spec
§4.6 control flow).
*/
var errBreak = errors.New("break")

/*
returnSignal carries a return statement's value up to the call frame
that is waiting for it. Caught by call; a returnSignal escaping a
top-level Run is a parser defect, since the parser rejects return
outside of a function.
*/
type returnSignal struct {
	value value.Value
}

func (r *returnSignal) Error() string { return "return outside of a call" }

/*
Interp holds everything one program run needs: the global frame, the
sink for print output, a logger for diagnostics, and the current call
depth used to guard against runaway recursion (spec §9).
*/
type Interp struct {
	name      string
	global    *scope.Frame
	out       io.Writer
	log       util.Logger
	callDepth int
}

/*
New creates an interpreter. name identifies the source for diagnostics;
out receives print statement output.
*/
func New(name string, out io.Writer, log util.Logger) *Interp {
	if log == nil {
		log = &util.NullLogger{}
	}
	return &Interp{name: name, global: scope.NewGlobal(), out: out, log: log}
}

/*
Run executes every top-level statement of prog in the global frame, in
order, stopping at the first error (spec §4.6).
*/
func (ip *Interp) Run(prog *parser.Program) error {
	ip.log.LogInfo("running ", ip.name)

	for _, stmt := range prog.Stmts {
		if err := ip.execStmt(stmt, ip.global); err != nil {
			return ip.unwrapControlFlow(stmt, err)
		}
	}

	return nil
}

/*
unwrapControlFlow turns a break or return escaping the top level into a
runtime error: both are parser-guaranteed not to happen here, so seeing
one means an internal inconsistency rather than a user mistake.
*/
func (ip *Interp) unwrapControlFlow(stmt parser.Stmt, err error) error {
	if err == errBreak {
		return ip.errorAt(stmt.Pos(), util.ErrSyntax, "break outside of a loop")
	}
	if _, ok := err.(*returnSignal); ok {
		return ip.errorAt(stmt.Pos(), util.ErrSyntax, "return outside of a function")
	}
	return err
}

func (ip *Interp) errorAt(tok parser.Token, kind error, detail string) error {
	return util.NewRuntimeError(kind, detail, util.Position{Source: ip.name, Line: tok.Line, Col: tok.Col, Length: tok.Length})
}

// Statement execution
// ====================

/*
execStmt executes a single statement in frame, dispatching on its
concrete type (spec §4.2).
*/
func (ip *Interp) execStmt(stmt parser.Stmt, frame *scope.Frame) error {
	switch n := stmt.(type) {

	case *parser.BlockStmt:
		return ip.execBlock(n.Stmts, frame.NewChild())

	case *parser.IfStmt:
		return ip.execIf(n, frame)

	case *parser.WhileStmt:
		return ip.execWhile(n, frame)

	case *parser.BreakStmt:
		return errBreak

	case *parser.ReturnStmt:
		return ip.execReturn(n, frame)

	case *parser.VarDeclStmt:
		return ip.execVarDecl(n, frame)

	case *parser.FunDeclStmt:
		return ip.execFunDecl(n, frame)

	case *parser.PrintStmt:
		return ip.execPrint(n, frame)

	case *parser.ExprStmt:
		_, err := ip.evalExpr(n.Value, frame)
		return err

	default:
		errorutil.AssertTrue(false, fmt.Sprintf("unhandled statement %T", stmt))
		return nil
	}
}

/*
execBlock runs stmts in order in frame, stopping at the first error or
control-flow signal.
*/
func (ip *Interp) execBlock(stmts []parser.Stmt, frame *scope.Frame) error {
	for _, s := range stmts {
		if err := ip.execStmt(s, frame); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interp) execIf(n *parser.IfStmt, frame *scope.Frame) error {
	cond, err := ip.evalExpr(n.Cond, frame)
	if err != nil {
		return err
	}

	if cond.Truthy() {
		return ip.execStmt(n.Then, frame)
	}
	if n.Else != nil {
		return ip.execStmt(n.Else, frame)
	}
	return nil
}

/*
execWhile repeatedly evaluates the condition and runs the body, each
iteration in a fresh child frame (spec §4.3 I1). A break ends the loop
without propagating further; any other error or signal propagates.
*/
func (ip *Interp) execWhile(n *parser.WhileStmt, frame *scope.Frame) error {
	for {
		cond, err := ip.evalExpr(n.Cond, frame)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}

		if err := ip.execStmt(n.Body, frame.NewChild()); err != nil {
			if err == errBreak {
				return nil
			}
			return err
		}
	}
}

func (ip *Interp) execReturn(n *parser.ReturnStmt, frame *scope.Frame) error {
	if n.Value == nil {
		return &returnSignal{value: value.Nil}
	}

	v, err := ip.evalExpr(n.Value, frame)
	if err != nil {
		return err
	}
	return &returnSignal{value: v}
}

func (ip *Interp) execVarDecl(n *parser.VarDeclStmt, frame *scope.Frame) error {
	v, err := ip.evalExpr(n.Init, frame)
	if err != nil {
		return err
	}

	if err := frame.Declare(n.Name, v); err != nil {
		return ip.errorAt(n.Token, err, fmt.Sprintf("variable %q is already declared in this scope", n.Name))
	}

	return nil
}

func (ip *Interp) execFunDecl(n *parser.FunDeclStmt, frame *scope.Frame) error {
	fn := &value.Function{Name: n.Name, Params: n.Params, Body: n.Body}

	if err := frame.Declare(n.Name, value.Func(fn)); err != nil {
		return ip.errorAt(n.Token, err, fmt.Sprintf("function %q is already declared in this scope", n.Name))
	}

	return nil
}

func (ip *Interp) execPrint(n *parser.PrintStmt, frame *scope.Frame) error {
	v, err := ip.evalExpr(n.Value, frame)
	if err != nil {
		return err
	}

	fmt.Fprintln(ip.out, v.String())
	return nil
}

// Expression evaluation
// ======================

/*
evalExpr evaluates a single expression in frame, dispatching on its
concrete type (spec §4.2).
*/
func (ip *Interp) evalExpr(expr parser.Expr, frame *scope.Frame) (value.Value, error) {
	switch n := expr.(type) {

	case *parser.LiteralExpr:
		return ip.evalLiteral(n)

	case *parser.IdentExpr:
		v, ok := frame.Lookup(n.Name)
		if !ok {
			return value.Value{}, ip.errorAt(n.Token, util.ErrUndeclared, fmt.Sprintf("variable %q is not declared", n.Name))
		}
		return v, nil

	case *parser.AssignExpr:
		return ip.evalAssign(n, frame)

	case *parser.UnaryExpr:
		return ip.evalUnary(n, frame)

	case *parser.BinaryExpr:
		return ip.evalBinary(n, frame)

	case *parser.CallExpr:
		return ip.evalCall(n, frame)

	default:
		errorutil.AssertTrue(false, fmt.Sprintf("unhandled expression %T", expr))
		return value.Value{}, nil
	}
}

func (ip *Interp) evalLiteral(n *parser.LiteralExpr) (value.Value, error) {
	switch n.Token.Kind {
	case parser.TokenNil:
		return value.Nil, nil
	case parser.TokenTrue:
		return value.Bool(true), nil
	case parser.TokenFalse:
		return value.Bool(false), nil
	case parser.TokenInteger:
		i, err := parseInt(n.Token.Lexeme)
		if err != nil {
			return value.Value{}, ip.errorAt(n.Token, util.ErrSyntax, fmt.Sprintf("invalid integer literal %q", n.Token.Lexeme))
		}
		return value.Int(i), nil
	case parser.TokenDouble:
		d, err := parseDouble(n.Token.Lexeme)
		if err != nil {
			return value.Value{}, ip.errorAt(n.Token, util.ErrSyntax, fmt.Sprintf("invalid double literal %q", n.Token.Lexeme))
		}
		return value.Double(d), nil
	case parser.TokenString:
		return value.String(n.Token.Lexeme), nil
	default:
		errorutil.AssertTrue(false, fmt.Sprintf("unhandled literal kind %s", n.Token.Kind))
		return value.Value{}, nil
	}
}

func (ip *Interp) evalAssign(n *parser.AssignExpr, frame *scope.Frame) (value.Value, error) {
	v, err := ip.evalExpr(n.Value, frame)
	if err != nil {
		return value.Value{}, err
	}

	if err := frame.Assign(n.Name, v); err != nil {
		return value.Value{}, ip.errorAt(n.Token, err, fmt.Sprintf("variable %q is not declared", n.Name))
	}

	return v, nil
}

func (ip *Interp) evalUnary(n *parser.UnaryExpr, frame *scope.Frame) (value.Value, error) {
	operand, err := ip.evalExpr(n.Operand, frame)
	if err != nil {
		return value.Value{}, err
	}

	switch n.Op {
	case parser.TokenBang:
		return value.Not(operand), nil
	case parser.TokenMinus:
		result, err := value.Neg(operand)
		if err != nil {
			return value.Value{}, ip.errorAt(n.Token, err, fmt.Sprintf("unary - requires a number, got %s", operand.Kind))
		}
		return result, nil
	default:
		errorutil.AssertTrue(false, fmt.Sprintf("unhandled unary operator %s", n.Op))
		return value.Value{}, nil
	}
}

/*
evalBinary evaluates a binary expression. And/Or short-circuit: the
right operand is evaluated only when the left does not already decide
the result (spec §4.4).
*/
func (ip *Interp) evalBinary(n *parser.BinaryExpr, frame *scope.Frame) (value.Value, error) {
	if n.Op == parser.TokenAnd || n.Op == parser.TokenOr {
		return ip.evalShortCircuit(n, frame)
	}

	left, err := ip.evalExpr(n.Left, frame)
	if err != nil {
		return value.Value{}, err
	}

	right, err := ip.evalExpr(n.Right, frame)
	if err != nil {
		return value.Value{}, err
	}

	switch n.Op {
	case parser.TokenPlus:
		return ip.wrapArith(n, left, right, value.Add)
	case parser.TokenMinus:
		return ip.wrapArith(n, left, right, value.Sub)
	case parser.TokenStar:
		return ip.wrapArith(n, left, right, value.Mul)
	case parser.TokenSlash:
		return ip.wrapArith(n, left, right, value.Div)
	case parser.TokenSlashSlash:
		return ip.wrapArith(n, left, right, value.IntDiv)
	case parser.TokenPercent:
		return ip.wrapArith(n, left, right, value.Mod)

	case parser.TokenEqualEqual:
		return value.Bool(left.Equal(right)), nil
	case parser.TokenBangEqual:
		return value.Bool(!left.Equal(right)), nil

	case parser.TokenGreater, parser.TokenGreaterEqual, parser.TokenLess, parser.TokenLessEqual:
		return ip.evalOrdering(n, left, right)

	default:
		errorutil.AssertTrue(false, fmt.Sprintf("unhandled binary operator %s", n.Op))
		return value.Value{}, nil
	}
}

func (ip *Interp) evalShortCircuit(n *parser.BinaryExpr, frame *scope.Frame) (value.Value, error) {
	left, err := ip.evalExpr(n.Left, frame)
	if err != nil {
		return value.Value{}, err
	}

	if n.Op == parser.TokenOr && left.Truthy() {
		return left, nil
	}
	if n.Op == parser.TokenAnd && !left.Truthy() {
		return left, nil
	}

	return ip.evalExpr(n.Right, frame)
}

func (ip *Interp) wrapArith(n *parser.BinaryExpr, left, right value.Value, op func(value.Value, value.Value) (value.Value, error)) (value.Value, error) {
	result, err := op(left, right)
	if err != nil {
		detail := fmt.Sprintf("%s requires compatible numeric operands, got %s and %s", n.Op, left.Kind, right.Kind)
		if errors.Is(err, util.ErrDivideByZero) {
			detail = "division by zero"
		}
		return value.Value{}, ip.errorAt(n.Token, err, detail)
	}
	return result, nil
}

func (ip *Interp) evalOrdering(n *parser.BinaryExpr, left, right value.Value) (value.Value, error) {
	cmp, ok := left.Compare(right)
	if !ok {
		return value.Value{}, ip.errorAt(n.Token, util.ErrTypeMismatch,
			fmt.Sprintf("%s is not defined between %s and %s", n.Op, left.Kind, right.Kind))
	}

	switch n.Op {
	case parser.TokenGreater:
		return value.Bool(cmp > 0), nil
	case parser.TokenGreaterEqual:
		return value.Bool(cmp >= 0), nil
	case parser.TokenLess:
		return value.Bool(cmp < 0), nil
	default: // TokenLessEqual
		return value.Bool(cmp <= 0), nil
	}
}

/*
evalCall evaluates a function call: callee and arguments left-to-right,
then invokes call (spec §4.6 call semantics).
*/
func (ip *Interp) evalCall(n *parser.CallExpr, frame *scope.Frame) (value.Value, error) {
	callee, err := ip.evalExpr(n.Callee, frame)
	if err != nil {
		return value.Value{}, err
	}

	if callee.Kind != value.KindFunction {
		return value.Value{}, ip.errorAt(n.Token, util.ErrTypeMismatch, fmt.Sprintf("%s is not callable", callee.Kind))
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := ip.evalExpr(a, frame)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	return ip.call(n.Token, callee.AsFunction(), args)
}

/*
call invokes fn with args in a fresh frame parented at the global frame
(spec §4.3 I5: functions close over the global scope only, not their
caller's locals), guarding against runaway recursion via
config.MaxCallDepth (spec §9).
*/
func (ip *Interp) call(callTok parser.Token, fn *value.Function, args []value.Value) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return value.Value{}, ip.errorAt(callTok, util.ErrArityMismatch,
			fmt.Sprintf("%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args)))
	}

	maxDepth := config.Int(config.MaxCallDepth)
	if ip.callDepth >= maxDepth {
		return value.Value{}, ip.errorAt(callTok, util.ErrCallDepthExceeded,
			fmt.Sprintf("exceeded maximum call depth of %d calling %s", maxDepth, fn.Name))
	}

	callFrame := ip.global.NewChild()
	for i, p := range fn.Params {
		// Declare cannot fail here: each parameter name is fresh in callFrame.
		_ = callFrame.Declare(p, args[i])
	}

	body, ok := fn.Body.(parser.Stmt)
	if !ok {
		return value.Value{}, ip.errorAt(callTok, util.ErrSyntax, fmt.Sprintf("function %s has no body", fn.Name))
	}

	ip.callDepth++
	err := ip.execStmt(body, callFrame)
	ip.callDepth--

	if err != nil {
		if rs, ok := err.(*returnSignal); ok {
			return rs.value, nil
		}
		if err == errBreak {
			return value.Value{}, ip.errorAt(callTok, util.ErrSyntax, "break outside of a loop")
		}
		return value.Value{}, err
	}

	return value.Nil, nil
}

func parseInt(lexeme string) (int64, error) {
	return strconv.ParseInt(lexeme, 10, 64)
}

func parseDouble(lexeme string) (float64, error) {
	return strconv.ParseFloat(lexeme, 64)
}

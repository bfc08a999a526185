/*
 * midas
 *
 * Copyright 2026 The midas authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"bytes"
	"fmt"

	"github.com/krotik/common/stringutil"
)

/*
IndentationWidth is the number of spaces used per nesting level when
pretty printing an AST.
*/
const IndentationWidth = 2

/*
PrettyPrint renders a parsed Program as an indented textual tree.
A debugging aid; interpreter output does not use it.
*/
func PrettyPrint(prog *Program) string {
	var buf bytes.Buffer

	for _, s := range prog.Stmts {
		printStmt(&buf, s, 0)
	}

	return buf.String()
}

func indent(buf *bytes.Buffer, level int) {
	buf.WriteString(stringutil.GenerateRollingString(" ", level*IndentationWidth))
}

func printStmt(buf *bytes.Buffer, s Stmt, level int) {
	indent(buf, level)

	switch n := s.(type) {

	case *BlockStmt:
		buf.WriteString("Block\n")
		for _, c := range n.Stmts {
			printStmt(buf, c, level+1)
		}

	case *IfStmt:
		buf.WriteString("If\n")
		printExpr(buf, n.Cond, level+1)
		printStmt(buf, n.Then, level+1)
		if n.Else != nil {
			printStmt(buf, n.Else, level+1)
		}

	case *WhileStmt:
		buf.WriteString("While\n")
		printExpr(buf, n.Cond, level+1)
		printStmt(buf, n.Body, level+1)

	case *BreakStmt:
		buf.WriteString("Break\n")

	case *ReturnStmt:
		buf.WriteString("Return\n")
		if n.Value != nil {
			printExpr(buf, n.Value, level+1)
		}

	case *VarDeclStmt:
		fmt.Fprintf(buf, "VarDecl %s\n", n.Name)
		printExpr(buf, n.Init, level+1)

	case *FunDeclStmt:
		fmt.Fprintf(buf, "FunDecl %s(%v)\n", n.Name, n.Params)
		printStmt(buf, n.Body, level+1)

	case *PrintStmt:
		buf.WriteString("Print\n")
		printExpr(buf, n.Value, level+1)

	case *ExprStmt:
		buf.WriteString("ExprStmt\n")
		printExpr(buf, n.Value, level+1)

	default:
		fmt.Fprintf(buf, "<unknown statement %T>\n", s)
	}
}

func printExpr(buf *bytes.Buffer, e Expr, level int) {
	indent(buf, level)

	switch n := e.(type) {

	case *AssignExpr:
		fmt.Fprintf(buf, "Assign %s\n", n.Name)
		printExpr(buf, n.Value, level+1)

	case *BinaryExpr:
		fmt.Fprintf(buf, "Binary %s\n", n.Op)
		printExpr(buf, n.Left, level+1)
		printExpr(buf, n.Right, level+1)

	case *UnaryExpr:
		fmt.Fprintf(buf, "Unary %s\n", n.Op)
		printExpr(buf, n.Operand, level+1)

	case *CallExpr:
		buf.WriteString("Call\n")
		printExpr(buf, n.Callee, level+1)
		for _, a := range n.Args {
			printExpr(buf, a, level+1)
		}

	case *IdentExpr:
		fmt.Fprintf(buf, "Ident %s\n", n.Name)

	case *LiteralExpr:
		fmt.Fprintf(buf, "Literal %s\n", n.Token.Lexeme)

	default:
		fmt.Fprintf(buf, "<unknown expression %T>\n", e)
	}
}

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
Package parser implements the lexical scanner, the token and AST data
model, and the recursive-descent parser for midas.
*/
package parser

import "fmt"

/*
TokenKind is the closed set of token kinds the scanner can produce.
*/
type TokenKind int

/*
The closed set of token kinds (spec §4.1).
*/
const (
	TokenError TokenKind = iota
	TokenEOF

	// Punctuation

	TokenBang
	TokenComma
	TokenEqual
	TokenGreater
	TokenLess
	TokenMinus
	TokenLParen
	TokenRParen
	TokenPercent
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// Digraphs

	TokenBangEqual
	TokenEqualEqual
	TokenGreaterEqual
	TokenLessEqual
	TokenPlusPlus
	TokenSlashSlash

	// Literals

	TokenInteger
	TokenDouble
	TokenString
	TokenNil
	TokenTrue
	TokenFalse

	TokenIdentifier

	// Keywords

	TokenAnd
	TokenBreak
	TokenDo
	TokenElse
	TokenEnd
	TokenFor
	TokenFun
	TokenIf
	TokenOr
	TokenPrint
	TokenReturn
	TokenVar
	TokenWhile
)

var tokenNames = map[TokenKind]string{
	TokenError: "ERROR", TokenEOF: "EOF",

	TokenBang: "!", TokenComma: ",", TokenEqual: "=", TokenGreater: ">",
	TokenLess: "<", TokenMinus: "-", TokenLParen: "(", TokenRParen: ")",
	TokenPercent: "%", TokenPlus: "+", TokenSemicolon: ";", TokenSlash: "/",
	TokenStar: "*",

	TokenBangEqual: "!=", TokenEqualEqual: "==", TokenGreaterEqual: ">=",
	TokenLessEqual: "<=", TokenPlusPlus: "++", TokenSlashSlash: "//",

	TokenInteger: "INTEGER", TokenDouble: "DOUBLE", TokenString: "STRING",
	TokenNil: "nil", TokenTrue: "true", TokenFalse: "false",

	TokenIdentifier: "IDENTIFIER",

	TokenAnd: "and", TokenBreak: "break", TokenDo: "do", TokenElse: "else",
	TokenEnd: "end", TokenFor: "for", TokenFun: "fun", TokenIf: "if",
	TokenOr: "or", TokenPrint: "print", TokenReturn: "return", TokenVar: "var",
	TokenWhile: "while",
}

/*
String returns the name of a token kind, for diagnostics.
*/
func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

/*
keywords maps keyword lexemes to their token kind. Checked after an
identifier has been scanned.
*/
var keywords = map[string]TokenKind{
	"and": TokenAnd, "break": TokenBreak, "do": TokenDo, "else": TokenElse,
	"end": TokenEnd, "for": TokenFor, "fun": TokenFun, "if": TokenIf,
	"or": TokenOr, "print": TokenPrint, "return": TokenReturn, "var": TokenVar,
	"while": TokenWhile, "nil": TokenNil, "true": TokenTrue, "false": TokenFalse,
}

/*
Token is a single lexical unit produced by the Scanner (spec §3).
*/
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int // 1-based line of the first character
	Col    int // 1-based column of the first character
	Length int // length in characters
}

/*
String returns a string representation of a token, for diagnostics.
*/
func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}

/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_NUMBER

	// Operators
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_STAR:
		return "TOK_STAR"
	case TOK_SLASH:
		return "TOK_SLASH"
	}
	return "TOK_UNKNOWN"
}

// IsOperator reports whether t is one of the four binary operators.
func (t TokenType) IsOperator() bool {
	return t == TOK_PLUS || t == TOK_MINUS || t == TOK_STAR || t == TOK_SLASH
}

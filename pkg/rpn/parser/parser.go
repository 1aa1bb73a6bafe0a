/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"fmt"

	"github.com/dburkart/rpn2tex/pkg/common/parse"
	"github.com/dburkart/rpn2tex/pkg/rpn/ast"
	"github.com/dburkart/rpn2tex/pkg/rpn/scanner"
)

type Parser struct {
	Scanner scanner.Scanner
}

// Parse scans Scanner.Input and builds its expression tree. Errors are
// either a *parse.LexError or a *parse.ParseError.
func (p *Parser) Parse() (ast.Expression, error) {
	tokens, err := scanner.Tokenize(p.Scanner.Input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse builds an expression tree from a postfix token stream.
//
// Grammar:
//
//	expression      = number / expression expression operator
//	operator        = "+" / "-" / "*" / "/"
func Parse(tokens []parse.Token) (ast.Expression, error) {
	var stack []ast.Expression

	eof := endOfInput(tokens)

	for _, tok := range tokens {
		if tok.Type == scanner.TOK_EOF {
			eof = tok
			break
		}

		switch tt, _ := tok.Type.(scanner.TokenType); {
		case tt == scanner.TOK_NUMBER:
			stack = append(stack, ast.MakeNumberNode(tok))

		case tt.IsOperator():
			if len(stack) < 2 {
				return nil, parse.NewParseError(tok, fmt.Sprintf("operator '%s' requires two operands", tok.Lexeme))
			}

			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			stack = append(stack, ast.MakeBinaryOpNode(tok, left, right))

		default:
			return nil, parse.NewParseError(tok, fmt.Sprintf("unexpected token '%s'", tok.Lexeme))
		}
	}

	switch len(stack) {
	case 0:
		return nil, parse.NewParseError(eof, "Empty expression")
	case 1:
		return stack[0], nil
	}

	return nil, parse.NewParseError(eof, fmt.Sprintf("Invalid RPN: %d values remain on stack (missing operators?)", len(stack)))
}

// endOfInput synthesizes the TOK_EOF token used for stack errors when the
// stream does not carry one: it sits immediately after the last token.
func endOfInput(tokens []parse.Token) parse.Token {
	eof := parse.Token{
		Type:     scanner.TOK_EOF,
		Location: parse.Location{Line: 1, Column: 1},
	}

	if len(tokens) == 0 {
		return eof
	}

	last := tokens[len(tokens)-1].Location
	eof.Location = parse.Location{
		Start:  last.End,
		End:    last.End,
		Line:   last.Line,
		Column: last.Column + (last.End - last.Start),
	}
	return eof
}

/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package rpn converts Reverse Polish Notation arithmetic into LaTeX infix
// with the fewest parentheses that keep the original evaluation order.
package rpn

import (
	"github.com/dburkart/rpn2tex/pkg/rpn/latex"
	"github.com/dburkart/rpn2tex/pkg/rpn/parser"
	"github.com/dburkart/rpn2tex/pkg/rpn/scanner"
)

// Convert runs source through the scanner, parser and LaTeX generator. A
// failure is either a *parse.LexError or a *parse.ParseError, unwrapped.
func Convert(source string) (string, error) {
	tokens, err := scanner.Tokenize(source)
	if err != nil {
		return "", err
	}

	root, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}

	return latex.Generate(root), nil
}

/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package latex

import (
	"fmt"

	"github.com/dburkart/rpn2tex/pkg/rpn/ast"
)

var symbols = map[string]string{
	"+": "+",
	"-": "-",
	"*": `\times`,
	"/": `\div`,
}

var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

// Generate renders root as inline LaTeX math, e.g. "$( 5 + 3 ) \times 2$".
func Generate(root ast.Expression) string {
	return "$" + render(root) + "$"
}

func render(node ast.Expression) string {
	switch n := node.(type) {
	case *ast.NumberNode:
		return n.Value()

	case *ast.BinaryOpNode:
		left := render(n.Left)
		if needsParens(n.Left, n.Op, false) {
			left = "( " + left + " )"
		}

		right := render(n.Right)
		if needsParens(n.Right, n.Op, true) {
			right = "( " + right + " )"
		}

		return left + " " + symbols[n.Op] + " " + right
	}

	panic(fmt.Sprintf("Unknown expression %T", node))
}

// needsParens reports whether child must be grouped under an operator op.
// Lower-precedence children always are. An equal-precedence right child is
// grouped under the non-commutative operators, since "a - (b - c)" and
// "a - b - c" differ.
func needsParens(child ast.Expression, op string, isRight bool) bool {
	c, ok := child.(*ast.BinaryOpNode)
	if !ok {
		return false
	}

	switch {
	case precedence[c.Op] < precedence[op]:
		return true
	case isRight && precedence[c.Op] == precedence[op]:
		return op == "-" || op == "/"
	}

	return false
}

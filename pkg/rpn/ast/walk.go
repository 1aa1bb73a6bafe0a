/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

// Walk traverses the tree depth-first, left child before right. After a
// node's children have been visited, v.Visit(nil) is called.
func Walk(v Visitor, node Expression) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *BinaryOpNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *NumberNode:
		// Skip, leaf node

	default:
		panic("Unexpected Expression passed to Walk")
	}

	v.Visit(nil)
}

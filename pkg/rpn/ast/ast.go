/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"github.com/dburkart/rpn2tex/pkg/common/parse"
)

// Expression is implemented by exactly two node types: *NumberNode and
// *BinaryOpNode.
type Expression interface {
	Value() string
	Location() parse.Location
	expression()
}

type Visitor interface {
	Visit(Expression) Visitor
}

type (
	BaseNode struct {
		Token parse.Token
	}

	// NumberNode keeps the number exactly as it was spelled in the source.
	NumberNode struct {
		BaseNode
	}

	// BinaryOpNode is positioned at its operator token. Left and Right are
	// never nil.
	BinaryOpNode struct {
		BaseNode
		Op    string
		Left  Expression
		Right Expression
	}
)

// -- BaseNode

func (b *BaseNode) Value() string {
	return b.Token.Lexeme
}

func (b *BaseNode) Location() parse.Location {
	return b.Token.Location
}

//-- NumberNode

func MakeNumberNode(tok parse.Token) *NumberNode {
	return &NumberNode{BaseNode: BaseNode{Token: tok}}
}

func (n *NumberNode) expression() {}

//-- BinaryOpNode

func MakeBinaryOpNode(tok parse.Token, left, right Expression) *BinaryOpNode {
	return &BinaryOpNode{
		BaseNode: BaseNode{Token: tok},
		Op:       tok.Lexeme,
		Left:     left,
		Right:    right,
	}
}

func (b *BinaryOpNode) expression() {}

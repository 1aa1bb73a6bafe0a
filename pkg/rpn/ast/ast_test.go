/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"strings"
	"testing"

	"github.com/dburkart/rpn2tex/pkg/common/parse"
)

type recorder struct {
	visited []string
}

func (r *recorder) Visit(node Expression) Visitor {
	if node == nil {
		r.visited = append(r.visited, "end")
		return nil
	}
	r.visited = append(r.visited, node.Value())
	return r
}

func tree() Expression {
	five := MakeNumberNode(parse.Token{Lexeme: "5"})
	three := MakeNumberNode(parse.Token{Lexeme: "3"})
	two := MakeNumberNode(parse.Token{Lexeme: "2"})

	plus := MakeBinaryOpNode(parse.Token{Lexeme: "+"}, five, three)
	return MakeBinaryOpNode(parse.Token{Lexeme: "*", Location: parse.Location{Line: 1, Column: 9}}, plus, two)
}

func TestWalkOrder(t *testing.T) {
	r := recorder{}
	Walk(&r, tree())

	want := "* + 5 end 3 end end 2 end end"
	if got := strings.Join(r.visited, " "); got != want {
		t.Errorf("wanted %s, got %s", want, got)
	}
}

func TestDump(t *testing.T) {
	want := "BinaryOpNode[*]\n" +
		"    BinaryOpNode[+]\n" +
		"        NumberNode[5]\n" +
		"        NumberNode[3]\n" +
		"    NumberNode[2]\n"

	if got := Dump(tree()); got != want {
		t.Errorf("wanted\n%s\ngot\n%s", want, got)
	}
}

func TestBinaryOpNode(t *testing.T) {
	root := tree().(*BinaryOpNode)

	if root.Op != "*" || root.Value() != "*" {
		t.Errorf("wanted operator '*', got '%s'", root.Op)
	}

	if loc := root.Location(); loc.Line != 1 || loc.Column != 9 {
		t.Errorf("wanted 1:9, got %d:%d", loc.Line, loc.Column)
	}

	if root.Left == nil || root.Right == nil {
		t.Error("binary operations must own two children")
	}
}

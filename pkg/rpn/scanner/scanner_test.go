/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/dburkart/rpn2tex/pkg/common/parse"
)

func TestMatchNumber(t *testing.T) {
	cases := map[string]int{
		"42":     2,
		"3.14":   4,
		"-5":     2,
		"-2.5 +": 4,
		"7.":     1,
		"7.x":    1,
		"-":      0,
		"- 3":    0,
		"+":      0,
		"1.2.3":  3,
	}

	for input, want := range cases {
		s := Scanner{Input: input}
		if width := s.MatchNumber(); width != want {
			t.Errorf("%q should have width %d, not %d", input, want, width)
		}
	}
}

func TestEmitNumber(t *testing.T) {
	s := Scanner{Input: "12345 3.14"}

	wantLexemes := []string{"12345", "3.14"}

	for _, want := range wantLexemes {
		tok := s.Emit()

		if tok.Type != TOK_NUMBER {
			t.Error("wanted TOK_NUMBER, got", tok.Type.ToString())
		}

		if tok.Lexeme != want {
			t.Error("wanted", want, ", got", tok.Lexeme)
		}
	}
}

func TestEmitOperators(t *testing.T) {
	s := Scanner{Input: "+ - * /"}

	wantTypes := []TokenType{TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_SLASH, TOK_EOF}

	for i := 0; i < len(wantTypes); i++ {
		tok := s.Emit()

		if tok.Type != wantTypes[i] {
			t.Error("wanted", wantTypes[i].ToString(), ", got", tok.Type.ToString())
		}
	}
}

func TestEmitEOFRepeats(t *testing.T) {
	s := Scanner{Input: "1"}
	s.Emit()

	for i := 0; i < 3; i++ {
		if tok := s.Emit(); tok.Type != TOK_EOF {
			t.Error("wanted TOK_EOF, got", tok.Type.ToString())
		}
	}
}

func TestTokenizeNegativeNumber(t *testing.T) {
	tokens, err := Tokenize("-5")
	if err != nil {
		t.Fatal(err)
	}

	if len(tokens) != 2 {
		t.Fatalf("wanted 2 tokens, got %d", len(tokens))
	}

	if tokens[0].Type != TOK_NUMBER || tokens[0].Lexeme != "-5" {
		t.Errorf("wanted TOK_NUMBER '-5', got %s '%s'", tokens[0].Type.ToString(), tokens[0].Lexeme)
	}
}

func TestTokenizeMixedMinus(t *testing.T) {
	tokens, err := Tokenize("5 -3 +")
	if err != nil {
		t.Fatal(err)
	}

	wantTypes := []TokenType{TOK_NUMBER, TOK_NUMBER, TOK_PLUS, TOK_EOF}
	wantLexemes := []string{"5", "-3", "+", ""}

	if len(tokens) != len(wantTypes) {
		t.Fatalf("wanted %d tokens, got %d", len(wantTypes), len(tokens))
	}

	for i, tok := range tokens {
		if tok.Type != wantTypes[i] {
			t.Errorf("token %d: wanted %s, got %s", i, wantTypes[i].ToString(), tok.Type.ToString())
		}
		if tok.Lexeme != wantLexemes[i] {
			t.Errorf("token %d: wanted '%s', got '%s'", i, wantLexemes[i], tok.Lexeme)
		}
	}
}

func TestTokenizeMinusBeforeSpace(t *testing.T) {
	tokens, err := Tokenize("5 3 - 2")
	if err != nil {
		t.Fatal(err)
	}

	if tokens[2].Type != TOK_MINUS {
		t.Error("wanted TOK_MINUS, got", tokens[2].Type.ToString())
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("5 3\n\t+ 10")
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		lexeme string
		line   int
		column int
	}{
		{"5", 1, 1},
		{"3", 1, 3},
		{"+", 2, 2},
		{"10", 2, 4},
		{"", 2, 6},
	}

	if len(tokens) != len(want) {
		t.Fatalf("wanted %d tokens, got %d", len(want), len(tokens))
	}

	for i, w := range want {
		loc := tokens[i].Location
		if tokens[i].Lexeme != w.lexeme || loc.Line != w.line || loc.Column != w.column {
			t.Errorf("token %d: wanted '%s' at %d:%d, got '%s' at %d:%d",
				i, w.lexeme, w.line, w.column, tokens[i].Lexeme, loc.Line, loc.Column)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\r\n"} {
		tokens, err := Tokenize(input)
		if err != nil {
			t.Fatal(err)
		}

		if len(tokens) != 1 || tokens[0].Type != TOK_EOF {
			t.Errorf("%q: wanted a lone TOK_EOF, got %v", input, tokens)
		}
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	tokens, err := Tokenize("5 @")
	if tokens != nil {
		t.Error("wanted no tokens on error, got", tokens)
	}

	var lexErr *parse.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("wanted *parse.LexError, got %T", err)
	}

	if !strings.Contains(lexErr.Message, "Unexpected character '@'") {
		t.Error("unexpected message:", lexErr.Message)
	}

	if lexErr.Line() != 1 || lexErr.Column() != 3 {
		t.Errorf("wanted error at 1:3, got %d:%d", lexErr.Line(), lexErr.Column())
	}
}

func TestTokenizeStopsAtFirstError(t *testing.T) {
	_, err := Tokenize("1 2\n3 # $")

	var lexErr *parse.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("wanted *parse.LexError, got %T", err)
	}

	if lexErr.Message != "Unexpected character '#'" {
		t.Error("unexpected message:", lexErr.Message)
	}

	if lexErr.Line() != 2 || lexErr.Column() != 3 {
		t.Errorf("wanted error at 2:3, got %d:%d", lexErr.Line(), lexErr.Column())
	}
}

func TestTokenizeTrailingDot(t *testing.T) {
	_, err := Tokenize("5.")

	var lexErr *parse.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("wanted *parse.LexError, got %T", err)
	}

	if lexErr.Message != "Unexpected character '.'" || lexErr.Column() != 2 {
		t.Errorf("unexpected error: %s", lexErr.Error())
	}
}

func TestTokenizeMultibyteColumns(t *testing.T) {
	_, err := Tokenize("5 3 × 2")

	var lexErr *parse.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("wanted *parse.LexError, got %T", err)
	}

	if lexErr.Message != "Unexpected character '×'" || lexErr.Column() != 5 {
		t.Errorf("unexpected error: %s", lexErr.Error())
	}
}

/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/dburkart/rpn2tex/pkg/common/parse"
)

type Scanner struct {
	Input  string
	Start  int
	Pos    int
	Line   int
	Column int
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// MatchDigits returns the number of bytes of consecutive digits starting at
// offset i.
func (s *Scanner) MatchDigits(i int) int {
	size := 0
	for i+size < len(s.Input) && isDigit(rune(s.Input[i+size])) {
		size++
	}
	return size
}

// MatchNumber returns the length of the next token, assuming it is a
// number. A return value of 0 means no number starts at Pos.
//
// Grammar:
//
//	number          = [ "-" ] 1*DIGIT [ "." 1*DIGIT ]
func (s *Scanner) MatchNumber() int {
	i := s.Pos
	if i < len(s.Input) && s.Input[i] == '-' {
		i++
	}

	whole := s.MatchDigits(i)
	if whole == 0 {
		return 0
	}
	i += whole

	if i < len(s.Input) && s.Input[i] == '.' {
		if fraction := s.MatchDigits(i + 1); fraction > 0 {
			i += fraction + 1
		}
	}

	return i - s.Pos
}

// advance moves Pos forward by size bytes, keeping Line and Column in step.
func (s *Scanner) advance(size int) {
	end := s.Pos + size
	for s.Pos < end {
		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		s.Pos += width
		if r == '\n' {
			s.Line++
			s.Column = 1
		} else {
			s.Column++
		}
	}
}

// Emit the next Token found on Scanner.Input. Once the input is exhausted
// every call returns a TOK_EOF token.
func (s *Scanner) Emit() parse.Token {
	var t parse.Token

	if s.Line == 0 {
		s.Line, s.Column = 1, 1
	}

	for s.Pos < len(s.Input) {
		r, _ := utf8.DecodeRuneInString(s.Input[s.Pos:])
		if !isWhitespace(r) {
			break
		}
		s.advance(1)
	}

	s.Start = s.Pos
	t.Location = parse.Location{Start: s.Start, Line: s.Line, Column: s.Column}

	if s.Pos >= len(s.Input) {
		t.Type = TOK_EOF
		t.Location.End = s.Pos
		return t
	}

	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	skip := width

	switch {
	case r == '+':
		t.Type = TOK_PLUS
	case r == '*':
		t.Type = TOK_STAR
	case r == '/':
		t.Type = TOK_SLASH
	case r == '-':
		if n := s.MatchNumber(); n > 0 {
			t.Type = TOK_NUMBER
			skip = n
			break
		}
		t.Type = TOK_MINUS
	case isDigit(r):
		t.Type = TOK_NUMBER
		skip = s.MatchNumber()
	default:
		t.Type = TOK_INVALID
	}

	s.advance(skip)

	t.Lexeme = s.Input[s.Start:s.Pos]
	t.Location.End = s.Pos
	s.Start = s.Pos

	return t
}

// Tokenize scans source to completion. The returned slice always ends with a
// single TOK_EOF token. The first character that cannot start a token aborts
// the scan with a *parse.LexError.
func Tokenize(source string) ([]parse.Token, error) {
	s := Scanner{Input: source}
	tokens := []parse.Token{}

	for {
		tok := s.Emit()

		if tok.Type == TOK_INVALID {
			return nil, parse.NewLexError(tok, fmt.Sprintf("Unexpected character '%s'", tok.Lexeme))
		}

		tokens = append(tokens, tok)
		if tok.Type == TOK_EOF {
			return tokens, nil
		}
	}
}

/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"errors"
	"fmt"
	"strings"
)

type SyntaxError struct {
	Location Location
	Message  string
}

// LexError is returned when the scanner finds a character it cannot start a
// token with.
type LexError struct {
	SyntaxError
}

// ParseError is returned when a token stream does not form exactly one
// expression.
type ParseError struct {
	SyntaxError
}

func NewSyntaxError(t Token, m string) SyntaxError {
	return SyntaxError{Location: t.Location, Message: m}
}

func NewLexError(t Token, m string) *LexError {
	return &LexError{NewSyntaxError(t, m)}
}

func NewParseError(t Token, m string) *ParseError {
	return &ParseError{NewSyntaxError(t, m)}
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("Line %d, column %d: %s", s.Location.Line, s.Location.Column, s.Message)
}

func (s *SyntaxError) Line() int {
	return s.Location.Line
}

func (s *SyntaxError) Column() int {
	return s.Location.Column
}

// FormatError renders the error with the offending source line and a caret
// under the error column:
//
//	Error: Unexpected character '@'
//
//	1 | 5 3 @
//	  |     ^
func (s *SyntaxError) FormatError(input string) string {
	errorString := fmt.Sprintf("Error: %s\n", s.Message)

	lines := strings.Split(input, "\n")
	if s.Location.Line < 1 || s.Location.Line > len(lines) {
		return errorString
	}

	source := strings.TrimRight(lines[s.Location.Line-1], "\r")
	width := len(fmt.Sprint(s.Location.Line))

	column := s.Location.Column - 1
	if column < 0 {
		column = 0
	}

	errorString += "\n"
	errorString += fmt.Sprintf("%*d | %s\n", width, s.Location.Line, source)
	errorString += fmt.Sprintf("%s | %s^", strings.Repeat(" ", width), strings.Repeat(" ", column))
	return errorString
}

// AsSyntaxError returns the SyntaxError carried by a *LexError or
// *ParseError anywhere in err's chain.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return &lexErr.SyntaxError, true
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return &parseErr.SyntaxError, true
	}

	return nil, false
}

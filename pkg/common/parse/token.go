/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

type TokenType interface {
	ToString() string
}

// Location identifies where a token sits in its source. Start and End are
// byte offsets; Line and Column are 1-based and count runes.
type Location struct {
	Start  int
	End    int
	Line   int
	Column int
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
}

/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"errors"
	"net/http"

	"github.com/dburkart/rpn2tex/pkg/common/parse"
	"github.com/dburkart/rpn2tex/pkg/rpn"
)

const (
	ResultOK         = "ok"
	ResultLexError   = "lex_error"
	ResultParseError = "parse_error"
)

// ConvertResponse is the JSON body returned by /convert and sent for every
// websocket message.
type ConvertResponse struct {
	Latex  string `json:"latex,omitempty"`
	Error  string `json:"error,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// ConvertResult converts source and returns the response body, the HTTP
// status and the metrics result label.
func ConvertResult(source string) (ConvertResponse, int, string) {
	latex, err := rpn.Convert(source)
	if err == nil {
		return ConvertResponse{Latex: latex}, http.StatusOK, ResultOK
	}

	syntaxErr, ok := parse.AsSyntaxError(err)
	if !ok {
		return ConvertResponse{Error: err.Error()}, http.StatusInternalServerError, "error"
	}

	resp := ConvertResponse{
		Error:  syntaxErr.Message,
		Line:   syntaxErr.Line(),
		Column: syntaxErr.Column(),
	}

	result := ResultParseError
	var lexErr *parse.LexError
	if errors.As(err, &lexErr) {
		result = ResultLexError
	}

	return resp, http.StatusUnprocessableEntity, result
}

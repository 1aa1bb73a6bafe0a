/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dburkart/rpn2tex/pkg/common/parse"
	"github.com/dburkart/rpn2tex/pkg/rpn"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Conversion is the outcome of converting one line of a batch.
type Conversion struct {
	Line   int    `json:"line"`
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Column int    `json:"column,omitempty"`
}

// Conversions is a batch of results, in input order.
type Conversions []Conversion

// Batch converts every non-blank line read from r on its own. Conversion
// failures are recorded per line; only read errors are returned.
func Batch(r io.Reader) (Conversions, error) {
	results := Conversions{}
	lineNumber := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		c := Conversion{Line: lineNumber, Input: input}

		output, err := rpn.Convert(input)
		if err != nil {
			c.Error = err.Error()
			if syntaxErr, ok := parse.AsSyntaxError(err); ok {
				c.Error = syntaxErr.Message
				c.Column = syntaxErr.Column()
			}
		}
		c.Output = output

		results = append(results, c)
	}

	if err := scanner.Err(); err != nil {
		return results, errors.Wrapf(err, "unable to read batch input after line %d", lineNumber)
	}

	return results, nil
}

func (c Conversions) Headers() []string {
	return []string{"line", "input", "output", "error"}
}

func (c Conversions) Values() [][]string {
	rows := make([][]string, 0, len(c))
	for _, conv := range c {
		errorText := conv.Error
		if conv.Column > 0 {
			errorText = fmt.Sprintf("column %d: %s", conv.Column, conv.Error)
		}
		rows = append(rows, []string{strconv.Itoa(conv.Line), conv.Input, conv.Output, errorText})
	}
	return rows
}

// Failed returns the number of lines that did not convert.
func (c Conversions) Failed() int {
	failed := 0
	for _, conv := range c {
		if conv.Error != "" {
			failed++
		}
	}
	return failed
}

// Summary describes the batch for logging, e.g. "3 expressions, 1 failed, 24 B".
func (c Conversions) Summary() string {
	size := 0
	for _, conv := range c {
		size += len(conv.Input)
	}

	return fmt.Sprintf("%s %s, %d failed, %s",
		humanize.Comma(int64(len(c))), pluralize(len(c), "expression"), c.Failed(), humanize.Bytes(uint64(size)))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

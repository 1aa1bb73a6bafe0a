/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rpn2tex

import (
	"fmt"
	"io"
	"os"

	"github.com/dburkart/rpn2tex/pkg/common/parse"
	"github.com/dburkart/rpn2tex/pkg/rpn"
	"github.com/dburkart/rpn2tex/pkg/rpn/ast"
	"github.com/dburkart/rpn2tex/pkg/rpn/parser"
	"github.com/dburkart/rpn2tex/pkg/rpn/scanner"
	"github.com/pkg/errors"
)

// readSource picks the input: an inline expression wins, then a file
// argument, then stdin. "-" names stdin explicitly.
func readSource(stdin io.Reader, expr string, args []string) (string, error) {
	if expr != "" {
		return expr, nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "unable to read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %s", args[0])
	}
	return string(data), nil
}

// render converts source to LaTeX, or to an indented tree when dumpAST is
// set.
func render(source string, dumpAST bool) (string, error) {
	if !dumpAST {
		return rpn.Convert(source)
	}

	p := parser.Parser{Scanner: scanner.Scanner{Input: source}}
	root, err := p.Parse()
	if err != nil {
		return "", err
	}
	return ast.Dump(root), nil
}

// formatFailure renders err against source the way it is shown to users.
func formatFailure(err error, source string) string {
	if syntaxErr, ok := parse.AsSyntaxError(err); ok {
		return syntaxErr.FormatError(source)
	}
	return fmt.Sprintf("Error: %v", err)
}

// writeOutput writes output to path, or to stdout when path is empty. A
// trailing newline is added if output lacks one.
func writeOutput(stdout io.Writer, path, output string) error {
	if len(output) == 0 || output[len(output)-1] != '\n' {
		output += "\n"
	}

	if path == "" {
		_, err := io.WriteString(stdout, output)
		return errors.Wrap(err, "unable to write to stdout")
	}

	err := os.WriteFile(path, []byte(output), 0644)
	return errors.Wrapf(err, "unable to write %s", path)
}

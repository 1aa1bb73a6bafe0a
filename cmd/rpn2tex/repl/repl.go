/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/dburkart/rpn2tex/pkg/common/parse"
	"github.com/dburkart/rpn2tex/pkg/rpn"
	"github.com/dburkart/rpn2tex/pkg/rpn/ast"
	"github.com/dburkart/rpn2tex/pkg/rpn/parser"
	"github.com/dburkart/rpn2tex/pkg/rpn/scanner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const astCommand = ":ast"

var (
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	treeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactively convert RPN expressions",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		if err := readlinePrompt(cmd.OutOrStdout()); err != nil {
			log.Fatal().Err(err).Msg("unable to start prompt")
		}
	},
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(out io.Writer) error {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("exit"),
		readline.PcItem(astCommand),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		if strings.ToUpper(line) == "HELP" {
			fmt.Fprintln(out, "usage:")
			fmt.Fprintln(out, "    <expression>         convert an RPN expression to LaTeX")
			fmt.Fprintln(out, "    :ast <expression>    print the expression tree")
			fmt.Fprintln(out, "    exit")
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			break
		}
		if line == "" {
			continue
		}

		fmt.Fprintln(out, evaluate(line))
	}
	rl.Clean()

	return nil
}

// evaluate converts one line of input and returns it styled for display.
func evaluate(line string) string {
	source := line
	dumpAST := strings.HasPrefix(line, astCommand)
	if dumpAST {
		source = strings.TrimSpace(strings.TrimPrefix(line, astCommand))
	}

	if dumpAST {
		p := parser.Parser{Scanner: scanner.Scanner{Input: source}}
		root, err := p.Parse()
		if err != nil {
			return styleError(err, source)
		}
		return treeStyle.Render(strings.TrimRight(ast.Dump(root), "\n"))
	}

	output, err := rpn.Convert(source)
	if err != nil {
		return styleError(err, source)
	}
	return resultStyle.Render(output)
}

func styleError(err error, source string) string {
	if syntaxErr, ok := parse.AsSyntaxError(err); ok {
		return errorStyle.Render(syntaxErr.FormatError(source))
	}
	return errorStyle.Render(err.Error())
}

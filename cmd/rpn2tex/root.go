/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package rpn2tex

import (
	"fmt"
	"os"

	"github.com/dburkart/rpn2tex/cmd/rpn2tex/batch"
	"github.com/dburkart/rpn2tex/cmd/rpn2tex/repl"
	"github.com/dburkart/rpn2tex/cmd/rpn2tex/server"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "rpn2tex [file]",
		Short: "Convert Reverse Polish Notation arithmetic into LaTeX math",
		Long: "Reads an RPN expression from --expr, the named file, or stdin (also \"-\"),\n" +
			"and prints it as LaTeX infix with only the parentheses it needs.",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			source, err := readSource(cmd.InOrStdin(), viper.GetString("rpn2tex.expr"), args)
			if err != nil {
				log.Fatal().Err(err).Msg("unable to read input")
			}
			log.Debug().Str("size", humanize.Bytes(uint64(len(source)))).Msg("read input")

			output, err := render(source, viper.GetBool("rpn2tex.dump-ast"))
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatFailure(err, source))
				os.Exit(1)
			}

			err = writeOutput(cmd.OutOrStdout(), viper.GetString("rpn2tex.output"), output)
			if err != nil {
				log.Fatal().Err(err).Msg("unable to write output")
			}
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the rpn2tex config file (default ./config.toml)")

	rootCmd.Flags().StringP("expr", "e", "", "Convert this expression instead of reading a file")
	rootCmd.Flags().StringP("output", "o", "", "Write the result to this file instead of stdout")
	rootCmd.Flags().Bool("dump-ast", false, "Print the expression tree instead of LaTeX")

	// Bind viper config to the root flags
	viper.BindPFlag("rpn2tex.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("rpn2tex.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("rpn2tex.expr", rootCmd.Flags().Lookup("expr"))
	viper.BindPFlag("rpn2tex.output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("rpn2tex.dump-ast", rootCmd.Flags().Lookup("dump-ast"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("rpn2tex version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	batch.Command.Version = rootCmd.Version
	repl.Command.Version = rootCmd.Version
	server.Command.Version = rootCmd.Version
	rootCmd.AddCommand(batch.Command)
	rootCmd.AddCommand(repl.Command)
	rootCmd.AddCommand(server.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}

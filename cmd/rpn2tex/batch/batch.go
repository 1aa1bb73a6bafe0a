/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package batch

import (
	"io"
	"os"

	"github.com/dburkart/rpn2tex/pkg/report"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "batch [file]",
	Short: "Convert one expression per line and print a result table",
	Args:  cobra.MaximumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		format := viper.GetString("rpn2tex.format")
		if !supported(format) {
			log.Fatal().Str("format", format).Strs("supported", report.Formats).Msg("unsupported output format")
		}

		input, err := open(cmd.InOrStdin(), args)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to open batch input")
		}
		defer input.Close()

		results, err := report.Batch(input)
		if err != nil {
			log.Fatal().Err(err).Send()
		}

		writer := report.NewOutputWriter(cmd.OutOrStdout(), format)
		if err := writer.Write(results); err != nil {
			log.Fatal().Err(err).Msg("unable to write results")
		}

		log.Info().Msg(results.Summary())

		if results.Failed() > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("format", "f", "text", "Output format of results [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("rpn2tex.format", Command.Flags().Lookup("format"))
}

func supported(format string) bool {
	for _, f := range report.Formats {
		if f == format {
			return true
		}
	}
	return false
}

func open(stdin io.Reader, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", args[0])
	}
	return f, nil
}

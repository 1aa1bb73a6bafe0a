/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/rpn2tex/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Serve conversions over HTTP and websockets",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		srv := server.New(
			logger,
			viper.GetInt("server.port"),
			viper.GetInt("server.prom-port"),
		)

		// Serve the metrics endpoint
		go func() {
			if err := srv.ServeMetrics(); err != nil {
				logger.Error().Err(err).Send()
			}
		}()

		// Serve conversions
		if err := srv.ServeConversions(); err != nil {
			logger.Fatal().Err(err).Send()
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8080, "Port for conversion requests")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")

	// Bind flags to viper
	viper.BindPFlag("server.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("server.prom-port", Command.Flags().Lookup("prom-port"))
}

// Copyright 2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hako/durafmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stockdw/dwserve/healthcheck"
	"github.com/stockdw/dwserve/server"
	"github.com/stockdw/dwserve/warehouse"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the warehouse query API",
	Long: `The serve sub-command connects to the warehouse database and serves the
read-only HTTP API until interrupted. The connection pool is created once
at startup and shared by all requests.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		wh := &warehouse.Warehouse{DBUrl: viper.GetString("database.url")}
		if err := wh.Connect(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not connect to warehouse")
		}
		defer wh.Close()

		srv := server.New(server.Config{
			Log:       log.Logger,
			Warehouse: wh,
			Port:      viper.GetInt("server.port"),
			RateLimit: viper.GetFloat64("server.rate_limit"),
		})

		if url := viper.GetString("healthcheck.url"); url != "" {
			go healthcheck.Run(ctx, url, viper.GetDuration("healthcheck.interval"))
		}

		startTime := time.Now()

		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("HTTP server failed")
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error shutting down HTTP server")
		}

		log.Info().Str("Uptime", durafmt.Parse(time.Since(startTime)).String()).Msg("server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8000, "port to listen on")
	if err := viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for port failed")
	}
}

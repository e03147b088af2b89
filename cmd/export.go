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
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stockdw/dwserve/warehouse"
)

var exportOutput string

// exportCmd dumps the stock dimension as CSV, either to stdout or a file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stock dimension table as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		wh := &warehouse.Warehouse{DBUrl: viper.GetString("database.url")}
		if err := wh.Connect(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not connect to warehouse")
		}
		defer wh.Close()

		session, err := wh.Begin(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not begin warehouse session")
		}

		stocks, err := session.AllStocks(ctx)
		session.Close(ctx, err)
		if err != nil {
			log.Fatal().Err(err).Msg("could not fetch stock dimension")
		}

		out := os.Stdout
		if exportOutput != "" {
			fh, err := os.Create(exportOutput)
			if err != nil {
				log.Fatal().Err(err).Str("FileName", exportOutput).Msg("could not create output file")
			}
			defer fh.Close()
			out = fh
		}

		if err := gocsv.Marshal(stocks, out); err != nil {
			log.Fatal().Err(err).Msg("could not write csv")
		}

		log.Info().Int("NumStocks", len(stocks)).Msg("export complete")
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write csv to file instead of stdout")
}

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

// Package server provides the HTTP surface of the warehouse query API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/stockdw/dwserve/warehouse"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Warehouse *warehouse.Warehouse
	Port      int

	// RateLimit caps inbound requests per second across all clients;
	// zero means unlimited.
	RateLimit float64
}

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	handlers *Handlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		log:      cfg.Log.With().Str("component", "server").Logger(),
		handlers: NewHandlers(NewStore(cfg.Warehouse), cfg.Log),
	}

	s.setupMiddleware(cfg.RateLimit)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(rateLimit float64) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	if rateLimit > 0 {
		s.router.Use(rateLimitMiddleware(rateLimit))
	}

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	h := s.handlers

	s.router.Get("/db-test", h.HandleDBTest)
	s.router.Get("/stocks-list", h.HandleStocksList)
	s.router.Get("/stock-info/{symbol}", h.HandleStockInfo)
	s.router.Get("/sources", h.HandleSources)

	s.router.Get("/stock-ohlcv", h.HandleOhlcv)
	s.router.Get("/stock-ohlcv/latest/{symbol}", h.HandleOhlcvLatest)

	s.router.Get("/stock-balance-sheet", h.HandleBalanceSheet)
	s.router.Get("/stock-cashflow", h.HandleCashflow)
	s.router.Get("/stock-income", h.HandleIncome)
	s.router.Get("/stock-key-ratios", h.HandleKeyRatios)
	s.router.Get("/stock-recommendations", h.HandleRecommendations)
}

// Router exposes the configured routes, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

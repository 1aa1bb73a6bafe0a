/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MaxSourceBytes bounds the size of a single conversion request.
const MaxSourceBytes = 1 << 20

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore
	stats   *Stats

	port        int
	metricsPort int

	upgrader websocket.Upgrader
}

func New(log zerolog.Logger, port, metricsPort int) *Server {
	s := &Server{
		log:         log,
		metrics:     NewMetricsStore(),
		stats:       &Stats{},
		port:        port,
		metricsPort: metricsPort,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	s.metrics.RegisterCollector(NewStatsCollector(s.stats))

	return s
}

// Handler returns the conversion endpoints: POST /convert and GET /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/convert", s.handleConvert)
	mux.HandleFunc("/ws", s.handleWebsocket)
	return mux
}

func (s *Server) ServeConversions() error {
	s.log.Info().Int("port", s.port).Msg("listening for conversion requests")
	err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Handler())
	return errors.Wrap(err, "conversion server stopped")
}

func (s *Server) ServeMetrics() error {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	err := http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), mux)
	return errors.Wrap(err, "metrics server stopped")
}

// convert answers one conversion, recording metrics and logging the result.
func (s *Server) convert(log zerolog.Logger, endpoint, source string) (ConvertResponse, int) {
	start := time.Now()

	resp, status, result := ConvertResult(source)

	elapsed := time.Since(start)
	s.stats.BytesIn.Add(int64(len(source)))
	s.metrics.IncConversions(result)
	s.metrics.ObserveResponseNS(endpoint, elapsed.Nanoseconds())

	log.Debug().
		Str("endpoint", endpoint).
		Str("size", humanize.Bytes(uint64(len(source)))).
		Str("result", result).
		Dur("elapsed", elapsed).
		Msg("converted expression")

	return resp, status
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	log := s.log.With().Str("request", id).Logger()

	w.Header().Set("X-Request-Id", id)

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(log, w, http.StatusMethodNotAllowed, ConvertResponse{Error: "method not allowed"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxSourceBytes))
	if err != nil {
		err = errors.Wrap(err, "unable to read request body")
		log.Error().Err(err).Send()
		writeJSON(log, w, http.StatusBadRequest, ConvertResponse{Error: err.Error()})
		return
	}

	resp, status := s.convert(log, "convert", string(body))
	writeJSON(log, w, status, resp)
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	log := s.log.With().Str("session", id).Logger()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("unable to upgrade connection")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(MaxSourceBytes)

	s.stats.Sessions.Add(1)
	defer s.stats.Sessions.Add(-1)

	log.Info().Str("remote", r.RemoteAddr).Msg("websocket session opened")

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error().Err(err).Msg("error reading from websocket")
			}
			break
		}

		if kind != websocket.TextMessage {
			log.Trace().Int("kind", kind).Msg("ignoring non-text message")
			continue
		}

		resp, _ := s.convert(log, "ws", string(data))
		if err := conn.WriteJSON(resp); err != nil {
			log.Error().Err(err).Msg("unable to write websocket response")
			break
		}
	}

	log.Info().Msg("websocket session closed")
}

func writeJSON(log zerolog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("unable to write response")
	}
}

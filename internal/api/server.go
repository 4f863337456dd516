// Package api serves the HTTP JSON API over stored WITS history and the
// live frame stream.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Critlist/witskit/internal/db"
	"github.com/Critlist/witskit/internal/streammux"
	"github.com/Critlist/witskit/internal/wits"
)

// ANSI escape codes for cyan and reset
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

type Server struct {
	m      streammux.FrameMux
	db     *db.DB
	units  string
	source string
}

func NewServer(m streammux.FrameMux, database *db.DB, units, source string) *Server {
	return &Server{
		m:      m,
		db:     database,
		units:  units,
		source: source,
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400 && statusCode < 500:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 500:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// LoggingMiddleware logs method, path, query, status, and duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/frames", s.listFrames)
	mux.HandleFunc("/api/frame", s.showFrame)
	mux.HandleFunc("/api/data", s.listDataPoints)
	mux.HandleFunc("/api/symbols", s.listSymbols)
	mux.HandleFunc("/api/stats", s.showStats)
	mux.HandleFunc("/api/stream", s.streamFrames)
	mux.HandleFunc("/api/health", s.showHealth)
	mux.HandleFunc("/api/config", s.showConfig)
	mux.HandleFunc("/command", s.sendCommandHandler)
	mux.HandleFunc("/poll", s.pollHandler)
	return mux
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// parseTimeParam reads a query parameter as RFC3339 or Unix seconds. A
// missing parameter returns the zero time.
func parseTimeParam(r *http.Request, key string) (time.Time, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts, nil
	}
	if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid '%s' parameter (want RFC3339 or Unix seconds)", key)
}

func parseLimitParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("invalid 'limit' parameter")
	}
	return limit, nil
}

// parseUnitsParam reads the optional units parameter. The bool reports
// whether conversion was requested at all.
func parseUnitsParam(r *http.Request) (wits.UnitSystem, bool, error) {
	switch strings.ToLower(r.URL.Query().Get("units")) {
	case "":
		return wits.FPS, false, nil
	case "fps", "field":
		return wits.FPS, true, nil
	case "metric", "si":
		return wits.Metric, true, nil
	default:
		return wits.FPS, false, fmt.Errorf("invalid 'units' parameter (want fps or metric)")
	}
}

// convertPointUnits re-expresses a stored point in the target unit system
// using the symbol's declared unit pair. Points that do not convert keep
// their stored value and unit.
func convertPointUnits(p db.StoredPoint, target wits.UnitSystem) db.StoredPoint {
	if p.Value == nil {
		return p
	}
	symbol, ok := wits.Lookup(p.Code)
	if !ok {
		return p
	}
	to := symbol.Unit(target == wits.Metric)
	if wits.Unit(p.Unit) == to {
		return p
	}
	converted, err := wits.Convert(*p.Value, wits.Unit(p.Unit), to)
	if err != nil {
		return p
	}
	p.Value = &converted
	p.Unit = string(to)
	return p
}

func (s *Server) listFrames(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	since, err := parseTimeParam(r, "since")
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	until, err := parseTimeParam(r, "until")
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseLimitParam(r)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	frames, err := s.db.QueryFrames(since, until, limit)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to retrieve frames: %v", err))
		return
	}
	if frames == nil {
		frames = []db.StoredFrame{}
	}

	if err := json.NewEncoder(w).Encode(frames); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write frames")
		return
	}
}

type frameDetail struct {
	Frame  *db.StoredFrame  `json:"frame"`
	Points []db.StoredPoint `json:"points"`
	Errors []string         `json:"errors,omitempty"`
}

func (s *Server) showFrame(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	frameID := r.URL.Query().Get("id")
	if frameID == "" {
		s.writeJSONError(w, http.StatusBadRequest, "Missing 'id' parameter")
		return
	}

	frame, err := s.db.GetFrame(frameID)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to retrieve frame: %v", err))
		return
	}
	if frame == nil {
		s.writeJSONError(w, http.StatusNotFound, "Frame not found")
		return
	}

	points, err := s.db.FramePoints(frameID)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to retrieve frame points: %v", err))
		return
	}
	if points == nil {
		points = []db.StoredPoint{}
	}
	msgs, err := s.db.FrameErrors(frameID)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to retrieve frame errors: %v", err))
		return
	}

	detail := frameDetail{Frame: frame, Points: points, Errors: msgs}
	if err := json.NewEncoder(w).Encode(detail); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write frame")
		return
	}
}

func (s *Server) listDataPoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var codes []string
	if raw := r.URL.Query().Get("codes"); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			if code = strings.TrimSpace(code); code != "" {
				codes = append(codes, code)
			}
		}
	}

	since, err := parseTimeParam(r, "since")
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	until, err := parseTimeParam(r, "until")
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseLimitParam(r)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	target, convert, err := parseUnitsParam(r)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := s.db.QueryDataPoints(codes, since, until, limit)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to retrieve data points: %v", err))
		return
	}
	if points == nil {
		points = []db.StoredPoint{}
	}

	if convert {
		for i := range points {
			points[i] = convertPointUnits(points[i], target)
		}
	}

	if err := json.NewEncoder(w).Encode(points); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write data points")
		return
	}
}

func (s *Server) listSymbols(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// With a query, search the symbol catalog; without one, list the
	// symbols actually present in the stored history.
	if query := r.URL.Query().Get("q"); query != "" {
		if err := json.NewEncoder(w).Encode(wits.Search(query)); err != nil {
			s.writeJSONError(w, http.StatusInternalServerError, "Failed to write symbols")
		}
		return
	}

	symbols, err := s.db.AvailableSymbols()
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to retrieve symbols: %v", err))
		return
	}
	if symbols == nil {
		symbols = []db.SymbolSummary{}
	}

	if err := json.NewEncoder(w).Encode(symbols); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write symbols")
		return
	}
}

func (s *Server) showStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	since, err := parseTimeParam(r, "since")
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	until, err := parseTimeParam(r, "until")
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if code := r.URL.Query().Get("code"); code != "" {
		stats, err := s.db.SymbolStatsFor(code, since, until)
		if errors.Is(err, db.ErrNoSamples) {
			s.writeJSONError(w, http.StatusNotFound,
				fmt.Sprintf("No numeric samples for symbol %s", code))
			return
		}
		if err != nil {
			s.writeJSONError(w, http.StatusInternalServerError,
				fmt.Sprintf("Failed to compute stats: %v", err))
			return
		}
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			s.writeJSONError(w, http.StatusInternalServerError, "Failed to write stats")
		}
		return
	}

	all, err := s.db.StatsBySymbol(since, until)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to compute stats: %v", err))
		return
	}
	if all == nil {
		all = []db.SymbolStats{}
	}

	if err := json.NewEncoder(w).Encode(all); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write stats")
		return
	}
}

func (s *Server) streamFrames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	id, frames := s.m.Subscribe()
	defer s.m.Unsubscribe(id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Confirm the stream before the first frame arrives.
	fmt.Fprint(w, ": ping\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case frame, ok := <-frames:
			if !ok {
				return
			}
			// A frame spans multiple lines; each becomes its own data
			// field of a single SSE event.
			for _, line := range strings.Split(frame, "\n") {
				fmt.Fprintf(w, "data: %s\n", strings.TrimRight(line, "\r"))
			}
			fmt.Fprint(w, "\n")
			flusher.Flush()
		}
	}
}

func (s *Server) showHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	first, last, count, err := s.db.TimeRange()
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to read database: %v", err))
		return
	}

	health := map[string]any{
		"status": "ok",
		"source": s.source,
		"stream": s.m.Status(),
		"stored_frames": map[string]any{
			"count": count,
			"first": first,
			"last":  last,
		},
	}

	if err := json.NewEncoder(w).Encode(health); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write health")
		return
	}
}

func (s *Server) showConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	config := map[string]interface{}{
		"units":  s.units,
		"source": s.source,
	}

	if err := json.NewEncoder(w).Encode(config); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write config")
		return
	}
}

func (s *Server) sendCommandHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	command := r.FormValue("command")

	if err := s.m.SendCommand(command); err != nil {
		http.Error(w, "Failed to send command", http.StatusInternalServerError)
		return
	}
	io.WriteString(w, "Command sent successfully")
}

func (s *Server) pollHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.m.RequestFrame(); err != nil {
		http.Error(w, "Failed to request frame", http.StatusInternalServerError)
		return
	}
	io.WriteString(w, "Frame requested")
}

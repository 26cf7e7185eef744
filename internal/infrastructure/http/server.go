package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"hargakripto/internal/application"
	"hargakripto/internal/domain"
	"hargakripto/internal/infrastructure/logx"
)

const maxHistoryLimit = 500

type Server struct {
	snapshots    *application.SnapshotStore
	history      *application.HistoryLog
	historyLimit int
	ping         func(ctx context.Context) error
}

type Option func(*Server)

// WithPing makes /readyz depend on a backend check.
func WithPing(p func(ctx context.Context) error) Option { return func(s *Server) { s.ping = p } }

func WithHistoryLimit(n int) Option { return func(s *Server) { s.historyLimit = n } }

func NewServer(snapshots *application.SnapshotStore, history *application.HistoryLog, opts ...Option) *Server {
	s := &Server{snapshots: snapshots, history: history, historyLimit: 10}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type historyRow struct {
	Time   string        `json:"waktu"`
	Prices domain.Prices `json:"harga"`
	Rate   *float64      `json:"kurs,omitempty"`
}

func (s *Server) GetLatest(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshots.Load(r.Context())
	if err != nil {
		if application.KindOf(err).Recoverable() {
			notFound(w)
			return
		}
		logx.L().Warn("snapshot_read_failed", zap.Error(err))
		internalError(w)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := s.historyLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxHistoryLimit {
			badRequest(w, "limit must be between 1 and 500")
			return
		}
		limit = n
	}
	rows, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		logx.L().Warn("history_read_failed", zap.Error(err))
		internalError(w)
		return
	}
	out := make([]historyRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, historyRow{Time: row.Time, Prices: row.Prices, Rate: row.Rate})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

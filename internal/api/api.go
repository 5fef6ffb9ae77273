// Package api exposes player lookups as JSON over HTTP for the chat bot front
// end.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"l4d2stats/internal/assert"
	"l4d2stats/internal/components/telemetry"
	"l4d2stats/internal/errcode"
	"l4d2stats/internal/scrapers/anne"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	report_api_respond = "api.respond"
)

// Lookup is the subset of anne.Client the handlers need.
type Lookup interface {
	SearchPlayers(ctx context.Context, keyword string) ([]anne.SearchResult, error)
	PlayerDetail(ctx context.Context, identifier string) (anne.PlayerRecord, error)
	Top(ctx context.Context) ([]anne.SearchResult, error)
}

type Snapshots interface {
	Snapshot(ctx context.Context, identifier string) ([]byte, error)
}

type Options struct {
	CORSOrigins []string `json:"cors_origins" env:"CORS_ORIGINS"`
	// RequestTimeoutSeconds bounds every handler, lookups included.
	RequestTimeoutSeconds int `json:"request_timeout_seconds" env:"REQUEST_TIMEOUT_SECONDS"`
}

type Handler struct {
	lookup    Lookup
	snapshots Snapshots
	tel       telemetry.API
}

// NewRouter wires every route. snapshots may be nil, the snapshot route then
// answers 501.
func NewRouter(opts Options, lookup Lookup, snapshots Snapshots, tel telemetry.API) http.Handler {
	assert.NotNil(lookup, "lookup")
	assert.NotNil(tel, "telemetry")

	h := &Handler{
		lookup:    lookup,
		snapshots: snapshots,
		tel:       telemetry.NewScopedAPI("api", tel),
	}

	timeout := time.Duration(opts.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", h.Search)
		r.Get("/top", h.Top)
		r.Get("/players/{id}", h.Player)
		r.Get("/players/{id}/summary", h.PlayerSummary)
		r.Get("/players/{id}/snapshot", h.PlayerSnapshot)
		r.Get("/errors/{code}", h.ErrorMessage)
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.InfoContext(
			r.Context(),
			"http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "l4d2stats",
	})
}

// Search answers GET /api/v1/search?q=<keyword>.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.lookup.SearchPlayers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	results, err := h.lookup.Top(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	record, err := h.lookup.PlayerDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, record)
}

func (h *Handler) PlayerSummary(w http.ResponseWriter, r *http.Request) {
	record, err := h.lookup.PlayerDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(anne.Summary(record)))
}

func (h *Handler) PlayerSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.snapshots == nil {
		h.respondJSON(w, http.StatusNotImplemented, errorResponse{
			Error:   http.StatusText(http.StatusNotImplemented),
			Message: "snapshots are not enabled",
		})
		return
	}
	png, err := h.snapshots.Snapshot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// ErrorMessage renders the user-facing message of a code so front ends
// share one vocabulary.
func (h *Handler) ErrorMessage(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil {
		h.respondError(w, errcode.Caller(errcode.BadParams, err))
		return
	}
	code := errcode.Code(n)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"code":    n,
		"message": errcode.Message(code),
	})
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Stage   string `json:"stage,omitempty"`
}

// statusOf maps an error to the HTTP status the bot front end branches on.
func statusOf(err error) int {
	code, ok := errcode.CodeOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	if errcode.KindOf(err) == errcode.KindCaller {
		return http.StatusBadRequest
	}
	switch code {
	case errcode.NotFound, errcode.EmptyResult:
		return http.StatusNotFound
	case errcode.Unreachable:
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	res := errorResponse{
		Error:   http.StatusText(status),
		Message: errcode.Describe(err),
		Kind:    errcode.KindOf(err).String(),
	}
	var target *errcode.Error
	if errors.As(err, &target) {
		res.Code = int(target.Code)
		res.Stage = target.Stage
	}
	h.respondJSON(w, status, res)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		h.tel.ReportWarning(report_api_respond, err)
	}
}

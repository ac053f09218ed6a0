package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

// Handler serves mirrored transactions over HTTP.
type Handler struct {
	reader       Reader
	feedAppNames []string
	metrics      Metrics
	logger       *zap.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler builds a Handler. feedAppNames scopes the /feed endpoint.
func NewHandler(reader Reader, feedAppNames []string, metrics Metrics, logger *zap.Logger) (*Handler, error) {
	if reader == nil {
		return nil, errors.New("reader is required")
	}
	if metrics == nil {
		return nil, errors.New("http metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		reader:       reader,
		feedAppNames: feedAppNames,
		metrics:      metrics,
		logger:       logger.Named("http_api"),
	}, nil
}

// NewRouter registers all routes.
func (h *Handler) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.observe)

	r.HandleFunc("/healthz", h.HandleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/app-names", h.HandleAppNames).Methods(http.MethodGet)
	r.HandleFunc("/feed", h.HandleFeed).Methods(http.MethodGet)
	r.HandleFunc("/transactions/app-name/{appName}", h.HandleTransactionsByAppName).Methods(http.MethodGet)
	r.HandleFunc("/transactions/app-name/{appName}/tag/{name}/{value}", h.HandleTransactionsByTag).Methods(http.MethodGet)
	r.HandleFunc("/transactions/{id}", h.HandleTransaction).Methods(http.MethodGet)
	r.HandleFunc("/user/{address}/transactions", h.HandleUserTransactions).Methods(http.MethodGet)
	r.HandleFunc("/user/{address}/app-name/{appName}/transactions", h.HandleUserTransactions).Methods(http.MethodGet)

	return r
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.reader.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "store unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) HandleAppNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.reader.AppNames(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

func (h *Handler) HandleTransactionsByAppName(w http.ResponseWriter, r *http.Request) {
	views, err := h.reader.TransactionsByAppName(r.Context(), mux.Vars(r)["appName"])
	h.writeViews(w, r, views, err)
}

func (h *Handler) HandleTransactionsByTag(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tag := model.Tag{Name: vars["name"], Value: vars["value"]}
	views, err := h.reader.TransactionsByTag(r.Context(), vars["appName"], tag)
	h.writeViews(w, r, views, err)
}

// HandleUserTransactions serves both user routes; the app name comes from the path or the app-name query parameter.
func (h *Handler) HandleUserTransactions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appName, ok := vars["appName"]
	if !ok {
		appName = r.URL.Query().Get("app-name")
	}
	views, err := h.reader.TransactionsByOwner(r.Context(), vars["address"], appName)
	h.writeViews(w, r, views, err)
}

func (h *Handler) HandleTransaction(w http.ResponseWriter, r *http.Request) {
	view, err := h.reader.TransactionView(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, model.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "transaction not found"})
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if view.Tags == nil {
		view.Tags = []model.Tag{}
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	if len(h.feedAppNames) == 0 {
		writeJSON(w, http.StatusOK, model.FeedPage{Transactions: []model.TransactionView{}})
		return
	}

	q := model.FeedQuery{
		AppNames: h.feedAppNames,
		Owner:    r.URL.Query().Get("address"),
	}
	if raw := r.URL.Query().Get("cursor"); raw != "" {
		cursor, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || cursor < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cursor must be a non-negative integer"})
			return
		}
		q.Cursor = cursor
	}

	page, err := h.reader.Feed(r.Context(), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if page.Transactions == nil {
		page.Transactions = []model.TransactionView{}
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) writeViews(w http.ResponseWriter, r *http.Request, views []model.TransactionView, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if views == nil {
		views = []model.TransactionView{}
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		var route string
		if current := mux.CurrentRoute(r); current != nil {
			route, _ = current.GetPathTemplate()
		}
		h.metrics.ObserveRequest(route, r.Method, rec.code, start)
	})
}

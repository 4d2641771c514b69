package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/tazlab/tazgo/internal/calculation"
	"github.com/tazlab/tazgo/internal/store/sqlite"
)

// Handler holds the dependencies of the HTTP surface. The store is optional;
// without it the calculate endpoint still works and history returns 404.
type Handler struct {
	Engine *calculation.Engine
	Store  *sqlite.Store
	Log    *zap.Logger
}

// NewHandler creates a handler around an engine.
func NewHandler(engine *calculation.Engine, store *sqlite.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Engine: engine, Store: store, Log: log}
}

// Calculate runs one severance/notice calculation.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.Engine.Calculate(req.ToCalculationInput())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := CalculationResponse{Result: result}
	if req.Save && h.Store != nil {
		id, err := h.Store.Save(r.Context(), result)
		if err != nil {
			h.Log.Error("failed to save calculation", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save calculation")
			return
		}
		resp.ID = id
	}

	h.Log.Info("calculation served",
		zap.Int("total_work_days", result.TotalWorkDays),
		zap.String("total_net", result.TotalNet.StringFixed(2)),
		zap.Bool("saved", resp.ID != 0))
	writeJSON(w, http.StatusOK, resp)
}

// ListCalculations returns recent saved calculations, newest first.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusNotFound, "history is not enabled")
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.Store.List(r.Context(), limit)
	if err != nil {
		h.Log.Error("failed to list calculations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list calculations")
		return
	}
	if records == nil {
		records = []sqlite.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

// GetCalculation returns one saved calculation with its full result.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusNotFound, "history is not enabled")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid calculation id")
		return
	}

	rec, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("failed to load calculation", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load calculation")
		return
	}

	result, err := rec.Result()
	if err != nil {
		h.Log.Error("failed to decode stored calculation", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to decode stored calculation")
		return
	}
	writeJSON(w, http.StatusOK, CalculationResponse{ID: rec.ID, Result: result})
}

// GetRegulatory returns the regulatory table the engine calculates with.
func (h *Handler) GetRegulatory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Engine.Rules)
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Status: status, Message: message})
}

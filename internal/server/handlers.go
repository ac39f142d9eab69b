package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kapu/undercurrent/internal/constants"
	"github.com/kapu/undercurrent/internal/domain"
	"github.com/kapu/undercurrent/pkg/errors"
	"go.uber.org/zap"
)

// Analyzer runs the recommendation pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, artists []string) (*domain.AnalysisResult, error)
}

type Handler struct {
	analyzer Analyzer
	logger   *zap.Logger
}

func NewHandler(analyzer Analyzer, logger *zap.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		logger:   logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeRequest

	body := http.MaxBytesReader(w, r.Body, constants.ServerConfig.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		verr := errors.NewValidationError("request body must be a JSON object with an \"artists\" list", "artists", nil)
		h.logger.Warn("Rejected analyze request", zap.Error(err))
		writeJSON(w, verr.StatusCode, map[string]string{"error": verr.Message})
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), req.Artists)
	if err != nil {
		h.logger.Error("Analyze failed", zap.Error(err), zap.Int("artists", len(req.Artists)))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

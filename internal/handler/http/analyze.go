package http

import (
	"encoding/json"
	"net/http"

	"github.com/akhetov/hybrid-analyzer/internal/app"
	"github.com/akhetov/hybrid-analyzer/internal/logger"
	"github.com/akhetov/hybrid-analyzer/internal/utils"
	"github.com/akhetov/hybrid-analyzer/models"
)

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Int("text_length", len(req.Text)).Msg("text too short to analyze")
		http.Error(w, app.MsgTextTooShort, http.StatusBadRequest)
		return
	}

	result, err := h.services.AnalysisService.Analyze(ctx, userID, req.Text, req.CandidateLabels)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("analysis pipeline failed")
		http.Error(w, analysisFailureMessage(status), status)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	analyses, err := h.services.AnalysisService.History(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to load analysis history")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.HistoryResponse{
		Analyses: analyses,
		Length:   len(analyses),
	}, http.StatusOK)
}

// analysisFailureMessage picks the client-facing message for a failed
// analysis. The 503 case gets its own wording because the client can act on
// it (retry shortly); everything else collapses into a generic message so
// upstream details do not leak.
func analysisFailureMessage(status int) string {
	if status == http.StatusServiceUnavailable {
		return app.MsgClassifierWarmingUp
	}
	return app.MsgAnalysisFailed
}

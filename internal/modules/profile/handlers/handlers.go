// Package handlers provides HTTP handlers for risk profile assessment.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/clearpath-invest/profiler/internal/modules/profile"
	"github.com/clearpath-invest/profiler/internal/modules/questionnaire"
	"github.com/clearpath-invest/profiler/internal/modules/scoring"
)

// Handler handles questionnaire and risk profile HTTP requests
type Handler struct {
	catalog *questionnaire.Catalog
	repo    *profile.Repository
	log     zerolog.Logger
}

// NewHandler creates a new profile handler
func NewHandler(catalog *questionnaire.Catalog, repo *profile.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		repo:    repo,
		log:     log.With().Str("handler", "profile").Logger(),
	}
}

// questionView joins a question's scoring fields with its presentation
// metadata for the questionnaire UI.
type questionView struct {
	ID       string                 `json:"id"`
	Category questionnaire.Category `json:"category"`
	Text     string                 `json:"text"`
	Why      string                 `json:"why,omitempty"`
	Options  []questionnaire.Option `json:"options"`
}

// HandleGetQuestionnaire returns the full question catalog with
// presentation metadata, in catalog order.
func (h *Handler) HandleGetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	prompts := make(map[string]questionnaire.Prompt)
	for _, p := range h.catalog.Prompts() {
		prompts[p.QuestionID] = p
	}

	questions := h.catalog.Questions()
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		prompt := prompts[q.ID]
		views = append(views, questionView{
			ID:       q.ID,
			Category: q.Category,
			Text:     prompt.Text,
			Why:      prompt.Why,
			Options:  q.Options,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"catalog_version": h.catalog.Version,
		"questions":       views,
	})
}

// assessRequest is the submission payload: a user and their complete
// answer set keyed by question id.
type assessRequest struct {
	UserID  string                  `json:"user_id"`
	Answers questionnaire.AnswerSet `json:"answers"`
}

// HandleAssess computes and stores a risk profile from a completed
// questionnaire submission.
func (h *Handler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" {
		h.writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	result, err := profile.ComputeRiskProfile(h.catalog, req.Answers)
	if err != nil {
		var missing *scoring.MissingAnswerError
		if errors.As(err, &missing) {
			// Incomplete questionnaire: tell the caller exactly which
			// question is unanswered.
			h.writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":       "please complete all questions",
				"question_id": missing.QuestionID,
			})
			return
		}
		// Degenerate catalog is a deployment defect, not a user error.
		h.log.Error().Err(err).Msg("Risk profile computation failed")
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	stored, err := h.repo.Save(req.UserID, result)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to store risk profile")
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusCreated, stored)
}

// HandleGetProfile returns the latest stored profile for a user under
// the current catalog version.
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	stored, err := h.repo.GetLatest(userID, h.catalog.Version)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			h.writeError(w, http.StatusNotFound, "no risk profile for user")
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, stored)
}

// HandleGetStatus reports whether the user has completed the assessment
// under the current catalog version. Personalized report generation is
// gated on this.
func (h *Handler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	completed, err := h.repo.HasCompleted(userID, h.catalog.Version)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":         userID,
		"catalog_version": h.catalog.Version,
		"completed":       completed,
	})
}

// HandleGetStats returns aggregate score statistics across users for
// the current catalog version.
func (h *Handler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.ComputeAggregateStats(h.catalog.Version)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a JSON error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

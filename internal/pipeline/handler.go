package pipeline

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atelier-studio/atelier/internal/prompts"
	"github.com/atelier-studio/atelier/pkg/handlers"
	"github.com/atelier-studio/atelier/pkg/routes"
)

// Handler provides HTTP endpoints for running the generation pipeline.
// Every stage error is converted into a JSON failure response here; no
// fault from the pipeline crosses the boundary uncaught. Retry is always
// the caller's re-submission, never automatic.
type Handler struct {
	runner *Runner
	logger *slog.Logger
}

// NewHandler creates a Handler for the given pipeline runner.
func NewHandler(runner *Runner, logger *slog.Logger) *Handler {
	return &Handler{
		runner: runner,
		logger: logger.With("handler", "generate"),
	}
}

// Routes returns the route group definition for generation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/generate",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/social", Handler: h.Social},
			{Method: "POST", Pattern: "/scripts", Handler: h.Scripts},
			{Method: "POST", Pattern: "/branding", Handler: h.Branding},
		},
	}
}

// Social generates a social content plan from the submitted brief.
func (h *Handler) Social(w http.ResponseWriter, r *http.Request) {
	var brief prompts.SocialBrief
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.runner.GenerateSocial(r.Context(), brief)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Scripts generates short-form video scripts from the submitted brief.
func (h *Handler) Scripts(w http.ResponseWriter, r *http.Request) {
	var brief prompts.ScriptsBrief
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.runner.GenerateScripts(r.Context(), brief)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Branding generates a branding kit from the submitted brief.
func (h *Handler) Branding(w http.ResponseWriter, r *http.Request) {
	var brief prompts.BrandingBrief
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.runner.GenerateBranding(r.Context(), brief)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Package v1handler implements the v1 HTTP handlers for the report service.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"numerology/internal/report"
	"numerology/pkg/logger"
	"numerology/pkg/serrors"

	"go.uber.org/zap"
)

// Deps carries the collaborators the handlers need.
type Deps struct {
	// Runner executes the report pipeline.
	Runner report.Runner
}

// Handler serves the v1 endpoints.
type Handler struct {
	runner report.Runner
}

// New constructs a Handler from its dependencies.
func New(deps Deps) *Handler {
	return &Handler{runner: deps.Runner}
}

// errorBody is the JSON error envelope for all v1 endpoints.
type errorBody struct {
	Error string `json:"error"`
}

// writeError maps semantic error kinds to HTTP statuses and writes the error
// envelope. Internal details are logged, not leaked to the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	var serr *serrors.Error
	switch {
	case errors.Is(err, serrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrService):
		status = http.StatusBadGateway
		msg = "advice service unavailable"
	case errors.Is(err, serrors.ErrRender):
		msg = "report rendering failed"
	}

	if status == http.StatusBadRequest || status == http.StatusNotFound {
		// validation and lookup messages are safe and useful for the caller
		if errors.As(err, &serr) && serr.Message() != "" {
			msg = serr.Message()
		} else {
			msg = err.Error()
		}
	}

	logger.Error(ctx, "request failed", zap.Int("status", status), zap.Error(err))
	writeJSON(ctx, w, status, errorBody{Error: msg})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not write response", zap.Error(err))
	}
}

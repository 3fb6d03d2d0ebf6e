package v1handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"numerology/internal/report"
	"numerology/pkg/domain"
	"numerology/pkg/logger"
	"numerology/pkg/serrors"
)

// earliestBirthDate is the lower bound accepted for birthdates; the upper
// bound is the current day.
var earliestBirthDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

// createReportRequest is the submit payload.
type createReportRequest struct {
	FullName  string `json:"fullName"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
}

// createReportResponse exposes everything one pipeline run produced: the
// indicators, the advice sections, the chart image and the document location.
// When rendering failed partway, RenderError names the failure and the chart
// and document fields are empty; the computed sections are still present.
type createReportResponse struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"createdAt"`
	Profile   domain.Profile      `json:"profile"`
	Advice    domain.AdviceBundle `json:"advice"`
	// ChartPNG is base64-encoded by encoding/json.
	ChartPNG    []byte `json:"chartPng,omitempty"`
	DocumentURL string `json:"documentUrl,omitempty"`
	RenderError string `json:"renderError,omitempty"`
}

func newCreateReportResponse(res *report.RunResult, renderError string) createReportResponse {
	resp := createReportResponse{
		ID:          res.Report.ID.String(),
		CreatedAt:   res.Report.CreatedAt,
		Profile:     res.Report.Profile,
		Advice:      res.Report.Advice,
		ChartPNG:    res.ChartPNG,
		RenderError: renderError,
	}
	if res.DocumentPath != "" {
		resp.DocumentURL = fmt.Sprintf("/v1/reports/%s/document", res.Report.ID)
	}

	return resp
}

// parseInput validates the submission and converts it to a domain input.
// Validation failures stop the request before the pipeline is invoked.
func parseInput(req createReportRequest) (domain.Input, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return domain.Input{}, serrors.With(serrors.ErrValidation, "fullName is required")
	}
	if strings.TrimSpace(req.BirthDate) == "" {
		return domain.Input{}, serrors.With(serrors.ErrValidation, "birthDate is required")
	}

	birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		return domain.Input{}, serrors.Wrap(serrors.ErrValidation, err, "birthDate must be YYYY-MM-DD")
	}
	if birthDate.Before(earliestBirthDate) {
		return domain.Input{}, serrors.With(serrors.ErrValidation, "birthDate must not be before 1970-01-01")
	}
	if birthDate.After(time.Now().UTC()) {
		return domain.Input{}, serrors.With(serrors.ErrValidation, "birthDate must not be in the future")
	}

	return domain.Input{FullName: req.FullName, BirthDate: birthDate}, nil
}

// CreateReport handles POST /v1/reports: one submission, one pipeline run.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "invalid request body"))

		return
	}

	in, err := parseInput(req)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	res, err := h.runner.Run(ctx, in)
	if err != nil {
		// a render failure aborts only the render step: the computed
		// indicators and advice are still returned to the caller
		if res != nil && errors.Is(err, serrors.ErrRender) {
			logger.Error(ctx, "report rendering failed, returning computed sections", zap.Error(err))
			writeJSON(ctx, w, http.StatusOK, newCreateReportResponse(res, "report rendering failed"))

			return
		}

		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, newCreateReportResponse(res, ""))
}

// DownloadDocument handles GET /v1/reports/{id}/document and streams the
// rendered PDF as an attachment.
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrValidation, err, "invalid report id"))

		return
	}

	path, err := h.runner.DocumentPath(ctx, domain.ReportID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="numerology_report_%s.pdf"`, id))
	http.ServeFile(w, r, path)
}

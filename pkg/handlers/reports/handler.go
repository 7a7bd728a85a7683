package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fsms/report-atlas/pkg/adapters"
	"github.com/fsms/report-atlas/pkg/models/api"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/models/store"
	"github.com/fsms/report-atlas/pkg/services/dashboard"
	"github.com/fsms/report-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	defaultReportFormat  = "pdf"
	defaultDatasetFormat = "excel"

	PartialDataHeader = "X-Partial-Data"
)

type Dashboard interface {
	Snapshot() dashboard.State
	LoadAll(ctx context.Context, r *domain.DateRange) (dashboard.State, error)
	LoadTab(ctx context.Context, tab string, r *domain.DateRange) (dashboard.State, error)
}

type Generator interface {
	Generate(ctx context.Context, name, format string, period *domain.DateRange) (*report.Result, error)
	ExportDataset(ctx context.Context, name, format string) (*report.Result, error)
}

type Downloads interface {
	Put(a *domain.Artifact) (string, time.Time)
	Get(token string) (*domain.Artifact, bool)
}

type History interface {
	List(ctx context.Context, filter store.ExportFilter) ([]store.ExportRecord, error)
}

type Handler struct {
	dash      Dashboard
	generator Generator
	downloads Downloads
	history   History
}

func NewHandler(dash Dashboard, generator Generator, downloads Downloads, history History) *Handler {
	return &Handler{
		dash:      dash,
		generator: generator,
		downloads: downloads,
		history:   history,
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, mapStateToApi(h.dash.Snapshot()))
}

// RefreshDashboard reloads one tab, or every tab when none is given.
func (h *Handler) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var state dashboard.State
	if tab := r.URL.Query().Get("tab"); tab != "" {
		state, err = h.dash.LoadTab(ctx, tab, period)
	} else {
		state, err = h.dash.LoadAll(ctx, period)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, mapStateToApi(state))
}

// ExportReport generates a report and streams it back directly.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, period, err := reportRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.generator.Generate(ctx, name, queryOr(r, "format", defaultReportFormat), period)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeArtifact(w, r, res.Artifact)
}

// GenerateReport generates a report and parks it behind a download token.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, period, err := reportRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.generator.Generate(ctx, name, queryOr(r, "format", defaultReportFormat), period)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, expiresAt := h.downloads.Put(res.Artifact)
	if res.Artifact.Partial {
		w.Header().Set(PartialDataHeader, "true")
	}
	writeJSON(w, r, http.StatusCreated, api.GenerateResponse{
		Token:       token,
		FileName:    res.Artifact.Name,
		ReportType:  res.Artifact.ReportType,
		Format:      string(res.Artifact.Format),
		Partial:     res.Artifact.Partial,
		ExpiresAt:   expiresAt,
		DownloadURL: "/api/v1/downloads/" + token,
	})
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	a, ok := h.downloads.Get(token)
	if !ok {
		http.Error(w, "download not found or expired", http.StatusNotFound)
		return
	}
	writeArtifact(w, r, a)
}

func (h *Handler) ExportDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	res, err := h.generator.ExportDataset(ctx, name, queryOr(r, "format", defaultDatasetFormat))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeArtifact(w, r, res.Artifact)
}

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := store.ExportFilter{ReportType: r.URL.Query().Get("reportType")}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			http.Error(w, fmt.Sprintf("invalid limit %q", limit), http.StatusBadRequest)
			return
		}
		filter.Limit = n
	}

	records, err := h.history.List(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response := make([]api.ExportHistoryEntry, 0, len(records))
	for _, rec := range records {
		response = append(response, adapters.MapExportRecordStoreToApi(rec))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func reportRequest(r *http.Request) (string, *domain.DateRange, error) {
	name, err := url.PathUnescape(chi.URLParam(r, "type"))
	if err != nil {
		return "", nil, &domain.UnknownReportTypeError{Name: chi.URLParam(r, "type")}
	}
	period, err := parsePeriod(r)
	if err != nil {
		return "", nil, err
	}
	return name, period, nil
}

// parsePeriod reads startDate/endDate. Both or neither must be set.
func parsePeriod(r *http.Request) (*domain.DateRange, error) {
	q := r.URL.Query()
	start, end := q.Get("startDate"), q.Get("endDate")
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, &badRequestError{msg: "startDate and endDate must be given together"}
	}
	period, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, &badRequestError{msg: err.Error(), err: err}
	}
	return &period, nil
}

func queryOr(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

type badRequestError struct {
	msg string
	err error
}

func (e *badRequestError) Error() string { return e.msg }
func (e *badRequestError) Unwrap() error { return e.err }

func statusOf(err error) int {
	var (
		badRequest *badRequestError
		format     *domain.UnsupportedFormatError
		reportType *domain.UnknownReportTypeError
		dataset    *report.UnknownDatasetError
		unknownTab *dashboard.UnknownTabError
	)
	switch {
	case errors.Is(err, domain.ErrEmptyData):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.As(err, &badRequest),
		errors.As(err, &format),
		errors.As(err, &reportType),
		errors.As(err, &dataset),
		errors.As(err, &unknownTab):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		http.Error(w, "internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func writeArtifact(w http.ResponseWriter, r *http.Request, a *domain.Artifact) {
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Data)))
	if a.Partial {
		w.Header().Set(PartialDataHeader, "true")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(a.Data); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("file", a.Name).
			Msg("failed to write artifact")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

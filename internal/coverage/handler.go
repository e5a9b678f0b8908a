package coverage

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/zena-portal/zena-portal/internal/ethiopic"
	"github.com/zena-portal/zena-portal/internal/i18n"
	"github.com/zena-portal/zena-portal/internal/platform/httpx"
)

// SubmitLimiter throttles submissions per office. Satisfied by
// platform/ratelimit.Limiter.
type SubmitLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Handler struct {
	logger  *slog.Logger
	service *Service
	limiter SubmitLimiter
}

func NewHandler(logger *slog.Logger, service *Service, limiter SubmitLimiter) *Handler {
	return &Handler{logger: logger, service: service, limiter: limiter}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Match(r.Header.Get("Accept-Language"))

	var req CreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}

	if h.limiter != nil && req.OfficeName != "" {
		ok, err := h.limiter.Allow(r.Context(), "submit:"+req.OfficeName)
		if err != nil {
			// A broken limiter should not block submissions.
			h.logger.Warn("rate limiter unavailable", slog.Any("error", err))
		} else if !ok {
			httpx.Problem(w, http.StatusTooManyRequests, "Too Many Requests", i18n.T(lang, i18n.TooManyRequests))
			return
		}
	}

	created, err := h.service.Submit(r.Context(), req, lang)
	if err != nil {
		var rejected *RejectedError
		switch {
		case errors.As(err, &rejected):
			httpx.JSON(w, http.StatusUnprocessableEntity, Verdict{Valid: false, Message: rejected.Message})
		case isValidationError(err):
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		case errors.Is(err, ErrAlreadyExists):
			httpx.Problem(w, http.StatusConflict, "Duplicate", "an identical request was already submitted")
		default:
			h.logger.Error("submit request failed", slog.Any("error", err))
			httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		}
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]any{
		"request": created,
		"message": i18n.T(lang, i18n.RequestSubmitted),
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := ListRequest{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := Status(s)
		req.Status = &status
	}
	if office := r.URL.Query().Get("office"); office != "" {
		req.Office = &office
	}
	req.DateFrom = parseDateQuery(r, "date_from")
	req.DateTo = parseDateQuery(r, "date_to")

	views, total, err := h.service.ListViews(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
			return
		}
		h.logger.Error("list requests failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"requests": views,
		"total":    total,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request id")
		return
	}

	view, err := h.service.GetView(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "request not found")
			return
		}
		h.logger.Error("get request failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, ReviewAccept)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, ReviewReject)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, action ReviewAction) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request id")
		return
	}

	var req ReviewRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	req.Action = action

	updated, err := h.service.Review(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.Problem(w, http.StatusNotFound, "Not Found", "request not found")
		case errors.Is(err, ErrInvalidStatus):
			httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
		case isValidationError(err):
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		default:
			h.logger.Error("review request failed", slog.Any("error", err))
			httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("summary failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, sum)
}

// CheckWindow is the form pre-check: it validates already normalized
// Gregorian inputs against the submission window without persisting
// anything.
func (h *Handler) CheckWindow(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Match(r.Header.Get("Accept-Language"))

	var req struct {
		CoverageDate string `json:"coverage_date"`
		CoverageTime string `json:"coverage_time"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}

	httpx.JSON(w, http.StatusOK, h.service.CheckWindow(req.CoverageDate, req.CoverageTime, lang))
}

// MinimumDate reports the earliest Ethiopian date the form should offer.
func (h *Handler) MinimumDate(w http.ResponseWriter, r *http.Request) {
	dt := h.service.MinimumDate()
	httpx.JSON(w, http.StatusOK, map[string]any{
		"year":      dt.Year,
		"month":     dt.Month,
		"day":       dt.Day,
		"formatted": ethiopic.FormatEthiopianDate(dt.Date),
	})
}

// Today reports the current instant on the Ethiopian calendar for the
// dashboard header.
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	c := h.service.Today()
	httpx.JSON(w, http.StatusOK, map[string]any{
		"year":    c.Year,
		"month":   c.Month,
		"day":     c.Day,
		"weekday": c.Weekday,
		"date":    c.DateString,
		"time":    c.TimeString,
		"period":  c.Period,
	})
}

func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func parseIntQuery(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func parseDateQuery(r *http.Request, name string) *time.Time {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

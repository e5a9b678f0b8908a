package coverage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/zena-portal/zena-portal/internal/ethiopic"
	"github.com/zena-portal/zena-portal/internal/i18n"
)

var ErrInvalidStatus = errors.New("invalid status transition")

// RejectedError reports a submission turned away before persistence:
// malformed Ethiopian date/time input or a closed submission window. It
// carries the localized user-facing reason and is a normal outcome, not a
// server fault.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

type Service struct {
	repo       Repository
	validate   *validator.Validate
	logger     *slog.Logger
	clock      func() time.Time
	cutoffHour int
}

// NewService wires the coverage service. A zero cutoffHour falls back to
// DefaultCutoffHour; a nil clock falls back to time.Now.
func NewService(repo Repository, logger *slog.Logger, cutoffHour int, clock func() time.Time) *Service {
	if cutoffHour <= 0 {
		cutoffHour = DefaultCutoffHour
	}
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		repo:       repo,
		validate:   validator.New(),
		logger:     logger,
		clock:      clock,
		cutoffHour: cutoffHour,
	}
}

// Submit parses the Ethiopian date/time strings, converts them to their
// Gregorian forms, checks the submission window and persists the request.
func (s *Service) Submit(ctx context.Context, req CreateRequest, lang language.Tag) (*Request, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate submission: %w", err)
	}

	now := s.clock()

	dt, err := ethiopic.ParseDate(req.EthiopianDate)
	if err != nil {
		return nil, &RejectedError{Message: i18n.T(lang, i18n.InvalidDateTimeFormat)}
	}
	tod, err := ethiopic.ParseTime(req.EthiopianTime)
	if err != nil {
		return nil, &RejectedError{Message: i18n.T(lang, i18n.InvalidDateTimeFormat)}
	}

	coverageDate := ethiopic.ToGregorian(dt.Year, dt.Month, dt.Day, now)
	coverageTime := ethiopic.TimeTo24Hour(tod.Hour, tod.Minute, tod.Period)

	verdict := ValidateWindow(now, coverageDate.Format("2006-01-02"), coverageTime, s.cutoffHour, lang)
	if !verdict.Valid {
		return nil, &RejectedError{Message: verdict.Message}
	}

	request := Request{
		ID:           uuid.New(),
		OfficeName:   req.OfficeName,
		SubmittedBy:  req.SubmittedBy,
		CoverageDate: coverageDate,
		CoverageTime: coverageTime,
		TimePeriod:   string(tod.Period),
		Location:     req.Location,
		Agenda:       req.Agenda,
		Status:       StatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("coverage request submitted",
		slog.String("id", request.ID.String()),
		slog.String("office", request.OfficeName),
		slog.String("coverage_date", coverageDate.Format("2006-01-02")),
	)
	return s.repo.Get(ctx, request.ID)
}

// Review applies an administrator's accept or reject decision to a
// pending request.
func (s *Service) Review(ctx context.Context, id uuid.UUID, req ReviewRequest) (*Request, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validate review: %w", err)
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		if existing.Status != StatusPending {
			return fmt.Errorf("%w: only pending requests can be reviewed", ErrInvalidStatus)
		}

		status := StatusAccepted
		var reason *string
		if req.Action == ReviewReject {
			status = StatusRejected
			reason = &req.Reason
		}
		return repo.UpdateStatus(ctx, id, status, req.ReviewedBy, reason)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Request, error) {
	return s.repo.Get(ctx, id)
}

// GetView returns a single request decorated for display.
func (s *Service) GetView(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.view(*r, s.clock())
	return &v, nil
}

func (s *Service) List(ctx context.Context, req ListRequest) ([]Request, int, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, 0, fmt.Errorf("validate list: %w", err)
	}
	return s.repo.List(ctx, req)
}

// ListViews returns requests decorated with Ethiopian display strings for
// the history and dashboard read paths.
func (s *Service) ListViews(ctx context.Context, req ListRequest) ([]RequestView, int, error) {
	requests, total, err := s.List(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	now := s.clock()
	views := make([]RequestView, 0, len(requests))
	for _, r := range requests {
		views = append(views, s.view(r, now))
	}
	return views, total, nil
}

func (s *Service) view(r Request, now time.Time) RequestView {
	return RequestView{
		Request:       r,
		EthiopianDate: ethiopic.FormatCompleteDate(r.CoverageDate),
		EthiopianTime: ethiopic.FormatTime(r.CoverageTime),
		Expired:       IsExpired(r.CoverageDate, r.Status, now),
	}
}

// Summary gathers per-status counts concurrently.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var sum Summary
	g, ctx := errgroup.WithContext(ctx)

	count := func(status Status, dst *int64) func() error {
		return func() error {
			n, err := s.repo.CountByStatus(ctx, status)
			if err != nil {
				return fmt.Errorf("count %s: %w", status, err)
			}
			*dst = n
			return nil
		}
	}
	g.Go(count(StatusPending, &sum.Pending))
	g.Go(count(StatusAccepted, &sum.Accepted))
	g.Go(count(StatusRejected, &sum.Rejected))
	g.Go(count(StatusExpired, &sum.Expired))
	g.Go(func() error {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count total: %w", err)
		}
		sum.Total = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &sum, nil
}

// MarkExpired flips pending requests whose coverage day is fully over to
// the expired status. Used by the background sweep.
func (s *Service) MarkExpired(ctx context.Context) (int64, error) {
	now := s.clock()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	n, err := s.repo.MarkExpired(ctx, today)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("expired coverage requests", slog.Int64("count", n))
	}
	return n, nil
}

// MinimumDate reports the earliest Ethiopian date currently open for
// submission, for pre-filling the date input.
func (s *Service) MinimumDate() ethiopic.DateTime {
	return MinimumAllowedDate(s.clock(), s.cutoffHour)
}

// Today converts the current instant to the Ethiopian calendar for the
// dashboard header.
func (s *Service) Today() ethiopic.Converted {
	return ethiopic.FromGregorian(s.clock())
}

// CheckWindow exposes the submission-window pre-check for already
// normalized Gregorian inputs.
func (s *Service) CheckWindow(dateISO, time24 string, lang language.Tag) Verdict {
	return ValidateWindow(s.clock(), dateISO, time24, s.cutoffHour, lang)
}

package coverage

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/zena-portal/zena-portal/internal/i18n"
)

type mockRepository struct {
	requests map[uuid.UUID]*Request

	createErr error
	getErr    error
}

func newMockRepository() *mockRepository {
	return &mockRepository{requests: make(map[uuid.UUID]*Request)}
}

func (m *mockRepository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return fn(ctx, m)
}

func (m *mockRepository) Get(ctx context.Context, id uuid.UUID) (*Request, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	r, ok := m.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockRepository) List(ctx context.Context, req ListRequest) ([]Request, int, error) {
	var out []Request
	for _, r := range m.requests {
		if req.Status != nil && r.Status != *req.Status {
			continue
		}
		if req.Office != nil && r.OfficeName != *req.Office {
			continue
		}
		out = append(out, *r)
	}
	return out, len(out), nil
}

func (m *mockRepository) Create(ctx context.Context, r Request) error {
	if m.createErr != nil {
		return m.createErr
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	m.requests[r.ID] = &r
	return nil
}

func (m *mockRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, reviewedBy string, reason *string) error {
	r, ok := m.requests[id]
	if !ok {
		return ErrNotFound
	}
	now := time.Now()
	r.Status = status
	r.ReviewedBy = &reviewedBy
	r.AdminReason = reason
	r.ReviewedAt = &now
	return nil
}

func (m *mockRepository) MarkExpired(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	for _, r := range m.requests {
		if r.Status == StatusPending && r.CoverageDate.Before(before) {
			r.Status = StatusExpired
			n++
		}
	}
	return n, nil
}

func (m *mockRepository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	var n int64
	for _, r := range m.requests {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.requests)), nil
}

// reference clock: Wednesday 2024-09-25 10:00, well before the cutoff.
func testClock() time.Time {
	return time.Date(2024, time.September, 25, 10, 0, 0, 0, time.UTC)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default(), DefaultCutoffHour, testClock)
}

func validCreate() CreateRequest {
	return CreateRequest{
		OfficeName:  "የኮሚዩኒኬሽን ጽህፈት ቤት",
		SubmittedBy: "user-1",
		// መስከረም 17, 2017 = 2024-09-27, safely inside the window.
		EthiopianDate: "17 1 2017",
		EthiopianTime: "3:00 ጥዋት",
		Location:      "አዲስ አበባ",
		Agenda:        "የመክፈቻ ሥነ ሥርዓት",
	}
}

func TestSubmit(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	created, err := svc.Submit(context.Background(), validCreate(), language.Amharic)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, "2024-09-27", created.CoverageDate.Format("2006-01-02"))
	// 3:00 ጥዋት is 09:00 standard time.
	assert.Equal(t, "09:00:00", created.CoverageTime)
	assert.Equal(t, "ጥዋት", created.TimePeriod)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestSubmitRejectsPastWindow(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	req := validCreate()
	// መስከረም 14 = 2024-09-24, already past.
	req.EthiopianDate = "14 1 2017"

	created, err := svc.Submit(context.Background(), req, language.Amharic)
	assert.Nil(t, created)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, i18n.T(language.Amharic, i18n.SubmissionWindowPassed), rejected.Message)
	assert.Empty(t, repo.requests, "nothing may be persisted on rejection")
}

func TestSubmitRejectsTomorrowPastCutoff(t *testing.T) {
	repo := newMockRepository()
	clock := func() time.Time {
		return time.Date(2024, time.September, 25, 15, 0, 0, 0, time.UTC)
	}
	svc := NewService(repo, slog.Default(), DefaultCutoffHour, clock)

	req := validCreate()
	// መስከረም 16 = 2024-09-26, tomorrow.
	req.EthiopianDate = "16 1 2017"

	_, err := svc.Submit(context.Background(), req, language.English)
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, i18n.T(language.English, i18n.SubmissionCutoffPassed), rejected.Message)
}

func TestSubmitRejectsMalformedInput(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	tests := []struct {
		name   string
		mutate func(*CreateRequest)
	}{
		{"bad date", func(r *CreateRequest) { r.EthiopianDate = "32 1 2017" }},
		{"bad time", func(r *CreateRequest) { r.EthiopianTime = "13:00 ጥዋት" }},
		{"bad period", func(r *CreateRequest) { r.EthiopianTime = "3:00 noon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req, language.English)
			var rejected *RejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, i18n.T(language.English, i18n.InvalidDateTimeFormat), rejected.Message)
		})
	}
}

func TestSubmitValidatesRequiredFields(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	req := validCreate()
	req.Location = ""

	_, err := svc.Submit(context.Background(), req, language.English)
	require.Error(t, err)
	var rejected *RejectedError
	assert.False(t, errors.As(err, &rejected), "missing fields are a validation error, not a verdict")
}

func TestReviewAccept(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	created, err := svc.Submit(context.Background(), validCreate(), language.Amharic)
	require.NoError(t, err)

	updated, err := svc.Review(context.Background(), created.ID, ReviewRequest{
		Action:     ReviewAccept,
		ReviewedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, "admin-1", *updated.ReviewedBy)
	assert.NotNil(t, updated.ReviewedAt)
	assert.Nil(t, updated.AdminReason)
}

func TestReviewReject(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	created, err := svc.Submit(context.Background(), validCreate(), language.Amharic)
	require.NoError(t, err)

	updated, err := svc.Review(context.Background(), created.ID, ReviewRequest{
		Action:     ReviewReject,
		Reason:     "ፕሮግራሙ ተደራራቢ ነው",
		ReviewedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, updated.Status)
	require.NotNil(t, updated.AdminReason)
	assert.Equal(t, "ፕሮግራሙ ተደራራቢ ነው", *updated.AdminReason)
}

func TestReviewRejectRequiresReason(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	created, err := svc.Submit(context.Background(), validCreate(), language.Amharic)
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), created.ID, ReviewRequest{
		Action:     ReviewReject,
		ReviewedBy: "admin-1",
	})
	assert.Error(t, err)
}

func TestReviewOnlyPending(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	created, err := svc.Submit(context.Background(), validCreate(), language.Amharic)
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), created.ID, ReviewRequest{Action: ReviewAccept, ReviewedBy: "admin-1"})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), created.ID, ReviewRequest{Action: ReviewAccept, ReviewedBy: "admin-2"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReviewNotFound(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, err := svc.Review(context.Background(), uuid.New(), ReviewRequest{Action: ReviewAccept, ReviewedBy: "admin-1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkExpired(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	stale := Request{
		ID:           uuid.New(),
		OfficeName:   "office",
		SubmittedBy:  "user-1",
		CoverageDate: time.Date(2024, time.September, 20, 0, 0, 0, 0, time.UTC),
		CoverageTime: "09:00:00",
		Status:       StatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), stale))

	fresh, err := svc.Submit(context.Background(), validCreate(), language.Amharic)
	require.NoError(t, err)

	n, err := svc.MarkExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := svc.Get(context.Background(), stale.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, got.Status)

	got, err = svc.Get(context.Background(), fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestSummary(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	created, err := svc.Submit(context.Background(), validCreate(), language.Amharic)
	require.NoError(t, err)

	second := validCreate()
	second.SubmittedBy = "user-2"
	second.EthiopianDate = "18 1 2017"
	_, err = svc.Submit(context.Background(), second, language.Amharic)
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), created.ID, ReviewRequest{Action: ReviewAccept, ReviewedBy: "admin-1"})
	require.NoError(t, err)

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.Pending)
	assert.Equal(t, int64(1), sum.Accepted)
	assert.Equal(t, int64(0), sum.Rejected)
	assert.Equal(t, int64(2), sum.Total)
}

func TestListViewsDecorates(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), validCreate(), language.Amharic)
	require.NoError(t, err)

	views, total, err := svc.ListViews(context.Background(), ListRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, total)

	v := views[0]
	// 2024-09-27 is ዓርብ, መስከረም 17.
	assert.Equal(t, "ዓርብ፣ 17 መስከረም 2017 ዓ.ም", v.EthiopianDate)
	assert.Equal(t, "3:00 ጥዋት", v.EthiopianTime)
	assert.False(t, v.Expired)
}

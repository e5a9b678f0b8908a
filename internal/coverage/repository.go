package coverage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zena-portal/zena-portal/internal/platform/db"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

const pgUniqueViolation = "23505"

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	Get(ctx context.Context, id uuid.UUID) (*Request, error)
	List(ctx context.Context, req ListRequest) ([]Request, int, error)
	Create(ctx context.Context, r Request) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, reviewedBy string, reason *string) error
	MarkExpired(ctx context.Context, before time.Time) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

const requestColumns = `id, office_name, submitted_by, coverage_date, coverage_time::text, time_period, location, agenda, status, admin_reason, reviewed_by, reviewed_at, created_at, updated_at`

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Request, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM media_requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *repository) List(ctx context.Context, req ListRequest) ([]Request, int, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	if req.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *req.Status)
		argPos++
	}
	if req.Office != nil {
		conditions = append(conditions, fmt.Sprintf("office_name = $%d", argPos))
		args = append(args, *req.Office)
		argPos++
	}
	if req.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("coverage_date >= $%d", argPos))
		args = append(args, *req.DateFrom)
		argPos++
	}
	if req.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("coverage_date <= $%d", argPos))
		args = append(args, *req.DateTo)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM media_requests`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(
		`SELECT `+requestColumns+` FROM media_requests%s ORDER BY coverage_date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		where, argPos, argPos+1,
	)
	args = append(args, limit, req.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *req)
	}
	return requests, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, req Request) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO media_requests (id, office_name, submitted_by, coverage_date, coverage_time, time_period, location, agenda, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		req.ID, req.OfficeName, req.SubmittedBy, req.CoverageDate, req.CoverageTime,
		req.TimePeriod, req.Location, req.Agenda, req.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, reviewedBy string, reason *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE media_requests
		SET status = $2, reviewed_by = $3, admin_reason = $4, reviewed_at = now(), updated_at = now()
		WHERE id = $1`,
		id, status, reviewedBy, reason,
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) MarkExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE media_requests
		SET status = $1, updated_at = now()
		WHERE status = $2 AND coverage_date < $3`,
		StatusExpired, StatusPending, before,
	)
	if err != nil {
		return 0, fmt.Errorf("mark expired: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *repository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM media_requests WHERE status = $1`, status).Scan(&n)
	return n, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM media_requests`).Scan(&n)
	return n, err
}

func scanRequest(row pgx.Row) (*Request, error) {
	var req Request
	err := row.Scan(
		&req.ID, &req.OfficeName, &req.SubmittedBy, &req.CoverageDate, &req.CoverageTime,
		&req.TimePeriod, &req.Location, &req.Agenda, &req.Status, &req.AdminReason,
		&req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

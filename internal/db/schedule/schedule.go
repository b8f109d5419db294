package schedule

import (
	"context"
	"errors"
	"fmt"
	c "schedtext/internal/core/domain/common"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const NAME_CONSTRAINT_NAME = "schedule_name_idx"

const selectColumns = "SELECT id, name, query, result, created_at FROM schedule"

// DBTX is satisfied by a pool, a connection and a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxScheduleRepository struct {
	db DBTX
}

func NewPgxScheduleRepository(db DBTX) *PgxScheduleRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxScheduleRepository{db: db}
}

func (r *PgxScheduleRepository) Create(ctx context.Context, input schedule.CreateInput) (s schedule.Schedule, err error) {
	encodedResult, err := encodeResult(input.Result)
	if err != nil {
		return s, err
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO schedule (name, query, result, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, query, result, created_at`,
		string(input.Name),
		input.Query,
		encodedResult,
		input.CreatedAt,
	)
	s, err = scanSchedule(row)

	var errNameUniqueConstraint *pgconn.PgError
	if errors.As(err, &errNameUniqueConstraint) {
		if errNameUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
			errNameUniqueConstraint.ConstraintName == NAME_CONSTRAINT_NAME {
			return s, schedule.ErrScheduleNameTaken
		}
	}
	return s, err
}

func (r *PgxScheduleRepository) GetByID(ctx context.Context, id schedule.ID) (s schedule.Schedule, err error) {
	row := r.db.QueryRow(ctx, selectColumns+" WHERE id = $1", int64(id))
	s, err = scanSchedule(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, schedule.ErrScheduleDoesNotExist
	}
	return s, err
}

func (r *PgxScheduleRepository) Read(ctx context.Context, options schedule.ReadOptions) ([]schedule.Schedule, error) {
	where, args := buildWhere(options)
	query := selectColumns + where + buildOrderBy(options.OrderBy)
	if options.Limit.IsPresent {
		args = append(args, int64(options.Limit.Value))
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if options.Offset > 0 {
		args = append(args, int64(options.Offset))
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]schedule.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return schedules, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *PgxScheduleRepository) Count(ctx context.Context, options schedule.ReadOptions) (uint, error) {
	where, args := buildWhere(options)
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM schedule"+where, args...).Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxScheduleRepository) Delete(ctx context.Context, id schedule.ID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM schedule WHERE id = $1", int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleDoesNotExist
	}
	return nil
}

func buildWhere(options schedule.ReadOptions) (string, []interface{}) {
	conditions := make([]string, 0, 1)
	args := make([]interface{}, 0, 3)
	if options.NameEquals.IsPresent {
		args = append(args, string(options.NameEquals.Value))
		conditions = append(conditions, fmt.Sprintf("name = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func buildOrderBy(orderBy schedule.OrderBy) string {
	switch orderBy {
	case schedule.OrderByIDDesc:
		return " ORDER BY id DESC"
	case schedule.OrderByIDAsc:
		return " ORDER BY id ASC"
	default:
		return ""
	}
}

func scanSchedule(row pgx.Row) (s schedule.Schedule, err error) {
	var (
		id        int64
		name      string
		query     string
		result    pgtype.JSONB
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &query, &result, &createdAt); err != nil {
		return s, err
	}
	decoded, err := decodeResult(result)
	if err != nil {
		return s, err
	}
	s = schedule.Schedule{
		ID:        schedule.ID(id),
		Name:      c.ScheduleName(name),
		Query:     query,
		Result:    decoded,
		CreatedAt: createdAt,
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func encodeResult(result recurrence.Result) (encoded pgtype.JSONB, err error) {
	if err := encoded.Set(result); err != nil {
		return encoded, fmt.Errorf("could not encode schedule result due to error: %w", err)
	}
	return encoded, nil
}

func decodeResult(encoded pgtype.JSONB) (result recurrence.Result, err error) {
	if err := encoded.AssignTo(&result); err != nil {
		return result, fmt.Errorf("could not decode schedule result due to error: %w", err)
	}
	if result.Schedules == nil {
		result.Schedules = []recurrence.ConstraintSet{}
	}
	if result.Exceptions == nil {
		result.Exceptions = []recurrence.ConstraintSet{}
	}
	return result, nil
}

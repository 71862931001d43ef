package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xezo360hye/DIP392-1337/internal/model"
)

// SessionRepository handles session (course meeting) data access.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

const sessionSelect = `
	SELECT s.id, s.course_id, s.date_time, s.topic, s.created_at, s.updated_at,
	       c.id, c.name, c.created_at, c.updated_at
	FROM sessions s
	JOIN courses c ON c.id = s.course_id`

func scanSessionRows(rows pgx.Rows) ([]model.Session, error) {
	var sessions []model.Session
	for rows.Next() {
		var s model.Session
		var c model.Course
		if err := rows.Scan(
			&s.ID, &s.CourseID, &s.DateTime, &s.Topic, &s.CreatedAt, &s.UpdatedAt,
			&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		s.Course = &c
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// List retrieves all sessions with their course embedded, newest first.
// A non-empty month ("YYYY-MM") restricts to that calendar month.
func (r *SessionRepository) List(ctx context.Context, month string) ([]model.Session, error) {
	sql := sessionSelect
	var args []interface{}
	if month != "" {
		sql += ` WHERE to_char(s.date_time, 'YYYY-MM') = $1`
		args = append(args, month)
	}
	sql += ` ORDER BY s.date_time DESC`

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessionRows(rows)
}

// Months returns the distinct "YYYY-MM" keys that have sessions, descending.
func (r *SessionRepository) Months(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT to_char(date_time, 'YYYY-MM') AS month FROM sessions ORDER BY month DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

// GetByID retrieves a session with its course embedded.
func (r *SessionRepository) GetByID(ctx context.Context, id int) (*model.Session, error) {
	var s model.Session
	var c model.Course
	err := r.pool.QueryRow(ctx, sessionSelect+` WHERE s.id = $1`, id).Scan(
		&s.ID, &s.CourseID, &s.DateTime, &s.Topic, &s.CreatedAt, &s.UpdatedAt,
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Course = &c
	return &s, nil
}

// Create inserts a new session.
func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sessions (course_id, date_time, topic) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		s.CourseID, s.DateTime, s.Topic,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies a session's fields.
func (r *SessionRepository) Update(ctx context.Context, s *model.Session) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE sessions SET course_id = $1, date_time = $2, topic = $3, updated_at = NOW() WHERE id = $4`,
		s.CourseID, s.DateTime, s.Topic, s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a session by ID. Attendance rows cascade.
func (r *SessionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xezo360hye/DIP392-1337/internal/model"
)

// AttendanceRepository handles attendance data access. The unique index on
// (student_id, session_id) is the natural key for every keyed write.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the upsert can run
// standalone or inside the sheet-save transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// List retrieves attendance records with student and session (incl. course)
// embedded. sessionID > 0 restricts to one session.
func (r *AttendanceRepository) List(ctx context.Context, sessionID int) ([]model.Attendance, error) {
	sql := `
		SELECT a.id, a.student_id, a.session_id, a.attended, a.notes_private, a.notes_public, a.created_at, a.updated_at,
		       st.id, st.name, st.surname, st.contact_info, st.created_at, st.updated_at,
		       se.id, se.course_id, se.date_time, se.topic, se.created_at, se.updated_at,
		       c.id, c.name, c.created_at, c.updated_at
		FROM attendances a
		JOIN students st ON st.id = a.student_id
		JOIN sessions se ON se.id = a.session_id
		JOIN courses c ON c.id = se.course_id`
	var args []interface{}
	if sessionID > 0 {
		sql += ` WHERE a.session_id = $1`
		args = append(args, sessionID)
	}
	sql += ` ORDER BY a.id`

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Attendance
	for rows.Next() {
		var a model.Attendance
		var st model.Student
		var se model.Session
		var co model.Course
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.SessionID, &a.Attended, &a.NotesPrivate, &a.NotesPublic, &a.CreatedAt, &a.UpdatedAt,
			&st.ID, &st.Name, &st.Surname, &st.ContactInfo, &st.CreatedAt, &st.UpdatedAt,
			&se.ID, &se.CourseID, &se.DateTime, &se.Topic, &se.CreatedAt, &se.UpdatedAt,
			&co.ID, &co.Name, &co.CreatedAt, &co.UpdatedAt,
		); err != nil {
			return nil, err
		}
		se.Course = &co
		a.Student = &st
		a.Session = &se
		records = append(records, a)
	}
	return records, rows.Err()
}

// ListByStudent retrieves a student's attendance history with session and
// course embedded, newest session first.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Attendance, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.student_id, a.session_id, a.attended, a.notes_private, a.notes_public, a.created_at, a.updated_at,
		       se.id, se.course_id, se.date_time, se.topic, se.created_at, se.updated_at,
		       c.id, c.name, c.created_at, c.updated_at
		FROM attendances a
		JOIN sessions se ON se.id = a.session_id
		JOIN courses c ON c.id = se.course_id
		WHERE a.student_id = $1
		ORDER BY se.date_time DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Attendance
	for rows.Next() {
		var a model.Attendance
		var se model.Session
		var co model.Course
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.SessionID, &a.Attended, &a.NotesPrivate, &a.NotesPublic, &a.CreatedAt, &a.UpdatedAt,
			&se.ID, &se.CourseID, &se.DateTime, &se.Topic, &se.CreatedAt, &se.UpdatedAt,
			&co.ID, &co.Name, &co.CreatedAt, &co.UpdatedAt,
		); err != nil {
			return nil, err
		}
		se.Course = &co
		a.Session = &se
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetByID retrieves an attendance record by primary key.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int) (*model.Attendance, error) {
	a := &model.Attendance{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_id, session_id, attended, notes_private, notes_public, created_at, updated_at
		 FROM attendances WHERE id = $1`, id,
	).Scan(&a.ID, &a.StudentID, &a.SessionID, &a.Attended, &a.NotesPrivate, &a.NotesPublic, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Upsert writes an attendance record keyed on (student_id, session_id):
// an existing row for the pair is updated in place, so repeated saves of the
// same sheet never produce duplicates.
func (r *AttendanceRepository) Upsert(ctx context.Context, a *model.Attendance) error {
	return upsert(ctx, r.pool, a)
}

func upsert(ctx context.Context, q querier, a *model.Attendance) error {
	return q.QueryRow(ctx,
		`INSERT INTO attendances (student_id, session_id, attended, notes_private, notes_public)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (student_id, session_id) DO UPDATE
		 SET attended = EXCLUDED.attended,
		     notes_private = EXCLUDED.notes_private,
		     notes_public = EXCLUDED.notes_public,
		     updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		a.StudentID, a.SessionID, a.Attended, a.NotesPrivate, a.NotesPublic,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// SaveSheet applies a whole session's sheet in one transaction. Either every
// row is upserted or, on the first failure, nothing is written.
func (r *AttendanceRepository) SaveSheet(ctx context.Context, sessionID int, records []model.SheetRecord) ([]model.Attendance, error) {
	saved := make([]model.Attendance, 0, len(records))
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, rec := range records {
			a := model.Attendance{
				StudentID:    rec.StudentID,
				SessionID:    sessionID,
				Attended:     rec.Attended,
				NotesPrivate: rec.NotesPrivate,
				NotesPublic:  rec.NotesPublic,
			}
			if err := upsert(ctx, tx, &a); err != nil {
				return err
			}
			saved = append(saved, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Sheet returns the merged attendance sheet for a session: one entry per
// known student, attended=false and a nil record id where nothing is stored.
func (r *AttendanceRepository) Sheet(ctx context.Context, sessionID int) ([]model.SheetEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT st.id, st.name, st.surname,
		       a.id, COALESCE(a.attended, FALSE), a.notes_private, a.notes_public
		FROM students st
		LEFT JOIN attendances a ON a.student_id = st.id AND a.session_id = $1
		ORDER BY st.surname, st.name`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.SheetEntry
	for rows.Next() {
		var e model.SheetEntry
		if err := rows.Scan(&e.StudentID, &e.Name, &e.Surname, &e.AttendanceID, &e.Attended, &e.NotesPrivate, &e.NotesPublic); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Update modifies a record by primary key.
func (r *AttendanceRepository) Update(ctx context.Context, a *model.Attendance) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE attendances SET attended = $1, notes_private = $2, notes_public = $3, updated_at = NOW() WHERE id = $4`,
		a.Attended, a.NotesPrivate, a.NotesPublic, a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record by primary key.
func (r *AttendanceRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

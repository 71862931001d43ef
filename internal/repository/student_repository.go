package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xezo360hye/DIP392-1337/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// List retrieves all students, optionally filtered by a case-insensitive
// substring match over name, surname and contact info.
func (r *StudentRepository) List(ctx context.Context, query string) ([]model.Student, error) {
	sql := `SELECT id, name, surname, contact_info, created_at, updated_at FROM students`
	var args []interface{}
	if query != "" {
		sql += ` WHERE name ILIKE '%' || $1 || '%' OR surname ILIKE '%' || $1 || '%' OR contact_info ILIKE '%' || $1 || '%'`
		args = append(args, query)
	}
	sql += ` ORDER BY surname, name`

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Surname, &s.ContactInfo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, surname, contact_info, created_at, updated_at FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Surname, &s.ContactInfo, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (name, surname, contact_info) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Surname, s.ContactInfo,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies a student's fields.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET name = $1, surname = $2, contact_info = $3, updated_at = NOW() WHERE id = $4`,
		s.Name, s.Surname, s.ContactInfo, s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a student by ID. Attendance rows cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

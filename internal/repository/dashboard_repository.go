package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts retrieves the high-level metrics for the dashboard.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (totalStudents, totalCourses, totalSessions, totalAttendance int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM sessions),
			(SELECT COUNT(*) FROM attendances)`,
	).Scan(&totalStudents, &totalCourses, &totalSessions, &totalAttendance)
	return
}

// GetAttendanceRate returns the share of stored records marked attended,
// or 0 when no records exist.
func (r *DashboardRepository) GetAttendanceRate(ctx context.Context) (float64, error) {
	var rate float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(CASE WHEN attended THEN 1.0 ELSE 0.0 END), 0) FROM attendances`,
	).Scan(&rate)
	return rate, err
}

// UpcomingSession is minimal data for the dashboard's upcoming-meetings card.
type UpcomingSession struct {
	ID         int       `json:"id"`
	CourseName string    `json:"course_name"`
	DateTime   time.Time `json:"date_time"`
	Topic      *string   `json:"topic"`
}

// GetUpcomingSessions retrieves the next N sessions scheduled after now.
func (r *DashboardRepository) GetUpcomingSessions(ctx context.Context, limit int) ([]UpcomingSession, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, c.name, s.date_time, s.topic
		 FROM sessions s
		 JOIN courses c ON c.id = s.course_id
		 WHERE s.date_time > NOW()
		 ORDER BY s.date_time ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []UpcomingSession
	for rows.Next() {
		var s UpcomingSession
		if err := rows.Scan(&s.ID, &s.CourseName, &s.DateTime, &s.Topic); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

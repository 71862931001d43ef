package service

import (
	"context"

	"github.com/xezo360hye/DIP392-1337/internal/repository"
)

// DashboardService aggregates the data behind the admin dashboard.
type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashboardRepo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// DashboardData is the payload for the dashboard endpoint.
type DashboardData struct {
	TotalStudents    int                          `json:"total_students"`
	TotalCourses     int                          `json:"total_courses"`
	TotalSessions    int                          `json:"total_sessions"`
	TotalAttendance  int                          `json:"total_attendance_records"`
	AttendanceRate   float64                      `json:"attendance_rate"`
	UpcomingSessions []repository.UpcomingSession `json:"upcoming_sessions"`
}

// GetDashboardData collects summary counts, the overall attendance rate and
// the next scheduled sessions.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	students, courses, sessions, attendance, err := s.dashboardRepo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := s.dashboardRepo.GetAttendanceRate(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.dashboardRepo.GetUpcomingSessions(ctx, 5)
	if err != nil {
		return nil, err
	}
	if upcoming == nil {
		upcoming = []repository.UpcomingSession{}
	}

	return &DashboardData{
		TotalStudents:    students,
		TotalCourses:     courses,
		TotalSessions:    sessions,
		TotalAttendance:  attendance,
		AttendanceRate:   rate,
		UpcomingSessions: upcoming,
	}, nil
}

package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/xezo360hye/DIP392-1337/internal/model"
	"github.com/xezo360hye/DIP392-1337/internal/repository"
)

// AttendanceService handles attendance business logic. The sheet save runs
// through the repository's transactional path so partial writes cannot occur.
type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	sessionRepo    *repository.SessionRepository
	log            zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	sessionRepo *repository.SessionRepository,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		sessionRepo:    sessionRepo,
		log:            log.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *AttendanceService) List(ctx context.Context, sessionID int) ([]model.Attendance, error) {
	return s.attendanceRepo.List(ctx, sessionID)
}

func (s *AttendanceService) ListByStudent(ctx context.Context, studentID int) ([]model.Attendance, error) {
	return s.attendanceRepo.ListByStudent(ctx, studentID)
}

func (s *AttendanceService) GetByID(ctx context.Context, id int) (*model.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

func (s *AttendanceService) Upsert(ctx context.Context, a *model.Attendance) error {
	return s.attendanceRepo.Upsert(ctx, a)
}

func (s *AttendanceService) Update(ctx context.Context, a *model.Attendance) error {
	return s.attendanceRepo.Update(ctx, a)
}

func (s *AttendanceService) Delete(ctx context.Context, id int) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// Sheet builds the merged per-student sheet for a session. The session is
// looked up first so an unknown id fails with not-found instead of returning
// an empty sheet.
func (s *AttendanceService) Sheet(ctx context.Context, sessionID int) ([]model.SheetEntry, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	entries, err := s.attendanceRepo.Sheet(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.SheetEntry{}
	}
	return entries, nil
}

// SaveSheet atomically upserts a whole session's sheet.
func (s *AttendanceService) SaveSheet(ctx context.Context, sessionID int, records []model.SheetRecord) ([]model.Attendance, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	saved, err := s.attendanceRepo.SaveSheet(ctx, sessionID, records)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("session_id", sessionID).Int("records", len(saved)).Msg("Sheet saved")
	return saved, nil
}

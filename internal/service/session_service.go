package service

import (
	"context"

	"github.com/xezo360hye/DIP392-1337/internal/model"
	"github.com/xezo360hye/DIP392-1337/internal/repository"
)

// SessionService handles session business logic.
type SessionService struct {
	sessionRepo *repository.SessionRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionRepo *repository.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

func (s *SessionService) List(ctx context.Context, month string) ([]model.Session, error) {
	return s.sessionRepo.List(ctx, month)
}

func (s *SessionService) Months(ctx context.Context) ([]string, error) {
	return s.sessionRepo.Months(ctx)
}

func (s *SessionService) GetByID(ctx context.Context, id int) (*model.Session, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

func (s *SessionService) Create(ctx context.Context, sess *model.Session) error {
	return s.sessionRepo.Create(ctx, sess)
}

func (s *SessionService) Update(ctx context.Context, sess *model.Session) error {
	return s.sessionRepo.Update(ctx, sess)
}

func (s *SessionService) Delete(ctx context.Context, id int) error {
	return s.sessionRepo.Delete(ctx, id)
}

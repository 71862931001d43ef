package service

import (
	"context"

	"github.com/xezo360hye/DIP392-1337/internal/model"
	"github.com/xezo360hye/DIP392-1337/internal/repository"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func (s *StudentService) List(ctx context.Context, query string) ([]model.Student, error) {
	return s.studentRepo.List(ctx, query)
}

func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *StudentService) Create(ctx context.Context, st *model.Student) error {
	return s.studentRepo.Create(ctx, st)
}

func (s *StudentService) Update(ctx context.Context, st *model.Student) error {
	return s.studentRepo.Update(ctx, st)
}

func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.studentRepo.Delete(ctx, id)
}

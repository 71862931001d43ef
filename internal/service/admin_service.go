package service

import (
	"context"

	"github.com/xezo360hye/DIP392-1337/internal/model"
	"github.com/xezo360hye/DIP392-1337/internal/repository"
)

// AdminService handles administrator account logic.
type AdminService struct {
	adminRepo *repository.AdminRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

func (s *AdminService) GetByLogin(ctx context.Context, login string) (*model.Admin, error) {
	return s.adminRepo.GetByLogin(ctx, login)
}

func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// Upsert creates the admin account or refreshes its password hash.
func (s *AdminService) Upsert(ctx context.Context, a *model.Admin) error {
	return s.adminRepo.Upsert(ctx, a)
}

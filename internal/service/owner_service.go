package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
	"github.com/brickfolio/property-portfolio-backend/internal/model"
	"github.com/brickfolio/property-portfolio-backend/internal/repository"
)

// OwnerService handles owner-related business logic operations.
type OwnerService struct {
	ownerRepo *repository.OwnerRepository
}

// NewOwnerService creates a new OwnerService with the provided repository dependencies.
func NewOwnerService(ownerRepo *repository.OwnerRepository) *OwnerService {
	return &OwnerService{ownerRepo: ownerRepo}
}

// GetOwners retrieves all owners.
func (s *OwnerService) GetOwners() ([]model.Owner, error) {
	return s.ownerRepo.GetOwners()
}

// GetOwner retrieves a single owner by ID.
func (s *OwnerService) GetOwner(ownerID string) (model.Owner, error) {
	return s.ownerRepo.GetOwnerOnID(ownerID)
}

// CreateOwner registers a new owner.
func (s *OwnerService) CreateOwner(ctx context.Context, req request.CreateOwnerRequest) (*model.Owner, error) {
	owner := &model.Owner{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.ownerRepo.InsertOwner(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	return owner, nil
}

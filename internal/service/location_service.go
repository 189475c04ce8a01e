package service

import (
	"context"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/dto"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/model"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/repository"

	"github.com/google/uuid"
)

// LocationService manages the named stock locations the editor's header
// fields refer to.
type LocationService interface {
	Create(ctx context.Context, req dto.CreateLocationRequest) (*dto.LocationResponse, error)
	List(ctx context.Context) ([]dto.LocationResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type locationService struct {
	repo repository.LocationRepository
}

func NewLocationService(repo repository.LocationRepository) LocationService {
	return &locationService{repo: repo}
}

func (s *locationService) Create(ctx context.Context, req dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	l := &model.Location{Name: req.Name, Type: req.Type, Active: true}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return locationToResponse(l), nil
}

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		out = append(out, *locationToResponse(&locations[i]))
	}
	return out, nil
}

func (s *locationService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func locationToResponse(l *model.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:     l.ID.String(),
		Name:   l.Name,
		Type:   l.Type,
		Active: l.Active,
	}
}

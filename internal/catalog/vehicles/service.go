package vehicles

import (
	"context"

	"github.com/merhebia-finest/tilbud/internal/catalog/shared"
)

// Service handles vehicle reference-data logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Vehicle, int, error) {
	return s.repo.List(ctx, filters)
}

// ListOptions returns the flat active-only list the offer form dropdowns use.
func (s *Service) ListOptions(ctx context.Context) ([]Option, error) {
	return s.repo.ListOptions(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Vehicle, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Vehicle, error) {
	return s.repo.Create(ctx, Vehicle{Name: req.Name, Model: req.Model, Active: req.Active})
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Vehicle, error) {
	if err := s.repo.Update(ctx, id, Vehicle{Name: req.Name, Model: req.Model, Active: req.Active}); err != nil {
		return Vehicle{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ToggleActive flips the active flag and returns the new state.
func (s *Service) ToggleActive(ctx context.Context, id string) (Vehicle, error) {
	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return Vehicle{}, err
	}
	if err := s.repo.SetActive(ctx, id, !v.Active); err != nil {
		return Vehicle{}, err
	}
	return s.repo.Get(ctx, id)
}

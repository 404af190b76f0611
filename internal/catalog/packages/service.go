package packages

import (
	"context"
	"fmt"

	"github.com/merhebia-finest/tilbud/internal/catalog/shared"
	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
	"github.com/merhebia-finest/tilbud/internal/pricing"
)

// Service handles package catalog logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]pricing.Package, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id string) (pricing.Package, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (pricing.Package, error) {
	pkg := req.Model()
	if err := pricing.ValidatePackage(pkg); err != nil {
		return pricing.Package{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error())
	}
	return s.repo.Create(ctx, pkg)
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (pricing.Package, error) {
	pkg := req.Model()
	if err := pricing.ValidatePackage(pkg); err != nil {
		return pricing.Package{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error())
	}
	if err := s.repo.Update(ctx, id, pkg); err != nil {
		return pricing.Package{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

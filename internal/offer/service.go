package offer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/merhebia-finest/tilbud/internal/offer/document"
	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
	"github.com/merhebia-finest/tilbud/internal/pricing"
	"github.com/merhebia-finest/tilbud/internal/settings"
	"github.com/merhebia-finest/tilbud/internal/users"
)

// DocumentRenderer turns a Document into PDF bytes.
type DocumentRenderer interface {
	Render(ctx context.Context, doc document.Document) (document.RenderResult, error)
}

// CompanySource supplies the issuer profile for document headers.
type CompanySource interface {
	Get(ctx context.Context) (settings.CompanySettings, error)
}

// Enqueuer schedules background PDF rendering. Nil disables pre-rendering;
// the download endpoint then renders on demand.
type Enqueuer interface {
	EnqueueOfferPDF(ctx context.Context, offerID string) error
}

// PDF is a rendered offer document ready for download.
type PDF struct {
	Content  []byte
	FileName string
}

// Service handles offer business logic.
type Service struct {
	logger    *slog.Logger
	repo      Repository
	company   CompanySource
	renderer  DocumentRenderer
	artifacts *ArtifactStore
	enqueuer  Enqueuer
}

// NewService builds a Service instance.
func NewService(logger *slog.Logger, repo Repository, company CompanySource, renderer DocumentRenderer, artifacts *ArtifactStore, enqueuer Enqueuer) *Service {
	return &Service{
		logger:    logger,
		repo:      repo,
		company:   company,
		renderer:  renderer,
		artifacts: artifacts,
		enqueuer:  enqueuer,
	}
}

// Create validates the offer contents, computes totals server-side and
// persists a new immutable record with the next offer number. A background
// PDF render is scheduled best-effort.
func (s *Service) Create(ctx context.Context, req CreateRequest, creator users.Ref) (Offer, error) {
	added := selectedOnly(req.AddedOptionPackages)

	if err := pricing.ValidateOfferInputs(req.SelectedPackage, added, req.ManualProducts, req.Discount); err != nil {
		return Offer{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error())
	}

	totals := pricing.Calculate(req.SelectedPackage, added, req.ManualProducts, req.Discount)

	saved, err := s.repo.Create(ctx, Offer{
		SelectedPackage:     req.SelectedPackage,
		Marke:               req.Marke,
		Model:               req.Model,
		Info:                req.Info,
		AddedOptionPackages: added,
		ManualProducts:      req.ManualProducts,
		Discount:            req.Discount,
		Terms:               req.Terms,
		ValidDays:           req.ValidDays,
		Totals:              totals,
		CreatedBy:           creator,
	})
	if err != nil {
		return Offer{}, err
	}

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueOfferPDF(ctx, saved.ID); err != nil {
			// The download endpoint renders on demand, so a failed enqueue
			// never blocks the save.
			s.logger.Warn("enqueue offer pdf failed", slog.String("offer_id", saved.ID), slog.Any("error", err))
		}
	}
	return saved, nil
}

// Get returns one offer.
func (s *Service) Get(ctx context.Context, id string) (Offer, error) {
	return s.repo.Get(ctx, id)
}

// List returns a page of offers, newest first.
func (s *Service) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 200 {
		req.Limit = 20
	}
	offers, total, err := s.repo.List(ctx, req)
	if err != nil {
		return ListResponse{}, err
	}
	return ListResponse{Offers: offers, Total: total}, nil
}

// Delete removes an offer and its cached PDF.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.artifacts != nil {
		if err := s.artifacts.Delete(id); err != nil {
			s.logger.Warn("delete offer artifact failed", slog.String("offer_id", id), slog.Any("error", err))
		}
	}
	return nil
}

// BuildDocument assembles the renderable document for an offer.
func (s *Service) BuildDocument(ctx context.Context, o Offer) (document.Document, error) {
	company, err := s.company.Get(ctx)
	if err != nil {
		return document.Document{}, fmt.Errorf("offer: load company profile: %w", err)
	}
	builder := document.NewBuilder(company.IssuerBlock())
	doc := builder.Build(o.SelectedPackage, o.AddedOptionPackages, o.ManualProducts, o.Totals, document.Meta{
		OfferNo:         o.OfferNo,
		Date:            o.CreatedAt.Format("2006-01-02"),
		ValidDays:       o.ValidDays,
		CreatedBy:       o.CreatedBy.Username,
		Terms:           o.Terms,
		Info:            o.Info,
		DiscountPercent: o.Discount,
	})
	return doc, nil
}

// GeneratePDF renders the offer document and caches the artifact.
func (s *Service) GeneratePDF(ctx context.Context, offerID string) (PDF, error) {
	o, err := s.repo.Get(ctx, offerID)
	if err != nil {
		return PDF{}, err
	}
	doc, err := s.BuildDocument(ctx, o)
	if err != nil {
		return PDF{}, err
	}
	result, err := s.renderer.Render(ctx, doc)
	if err != nil {
		return PDF{}, fmt.Errorf("offer: render pdf: %w", err)
	}
	if s.artifacts != nil {
		if err := s.artifacts.Save(o.ID, result.PDF); err != nil {
			s.logger.Warn("cache offer artifact failed", slog.String("offer_id", o.ID), slog.Any("error", err))
		}
	}
	return PDF{Content: result.PDF, FileName: doc.FileName}, nil
}

// LoadPDF serves the cached artifact when present and renders on demand
// otherwise.
func (s *Service) LoadPDF(ctx context.Context, offerID string) (PDF, error) {
	o, err := s.repo.Get(ctx, offerID)
	if err != nil {
		return PDF{}, err
	}
	if s.artifacts != nil {
		if pdf, err := s.artifacts.Load(o.ID); err == nil {
			return PDF{Content: pdf, FileName: document.FileName(o.OfferNo, o.Info)}, nil
		}
	}
	return s.GeneratePDF(ctx, offerID)
}

// selectedOnly strips unselected items and drops packages left empty, so the
// persisted snapshot carries exactly what the customer chose.
func selectedOnly(packages []pricing.OptionPackage) []pricing.OptionPackage {
	var out []pricing.OptionPackage
	for _, pkg := range packages {
		var options []pricing.OptionItem
		for _, opt := range pkg.Options {
			if opt.IsSelected {
				options = append(options, opt)
			}
		}
		if len(options) == 0 {
			continue
		}
		pkg.Options = options
		out = append(out, pkg)
	}
	return out
}

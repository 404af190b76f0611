package offer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/merhebia-finest/tilbud/internal/offer/document"
	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
	"github.com/merhebia-finest/tilbud/internal/pricing"
	"github.com/merhebia-finest/tilbud/internal/settings"
	"github.com/merhebia-finest/tilbud/internal/testutil"
	"github.com/merhebia-finest/tilbud/internal/users"
)

type memoryOfferRepo struct {
	byID    map[string]Offer
	nextNo  int64
	created []Offer
}

func newMemoryOfferRepo() *memoryOfferRepo {
	return &memoryOfferRepo{byID: make(map[string]Offer), nextNo: 100}
}

func (m *memoryOfferRepo) Create(ctx context.Context, o Offer) (Offer, error) {
	m.nextNo++
	o.ID = "offer-" + string(rune('a'+len(m.byID)))
	o.OfferNo = m.nextNo
	o.CreatedAt = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	m.byID[o.ID] = o
	m.created = append(m.created, o)
	return o, nil
}

func (m *memoryOfferRepo) Get(ctx context.Context, id string) (Offer, error) {
	o, ok := m.byID[id]
	if !ok {
		return Offer{}, httpx.ErrNotFound
	}
	return o, nil
}

func (m *memoryOfferRepo) List(ctx context.Context, req ListRequest) ([]Offer, int, error) {
	out := make([]Offer, 0, len(m.byID))
	for _, o := range m.byID {
		out = append(out, o)
	}
	return out, len(out), nil
}

func (m *memoryOfferRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return httpx.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type stubCompany struct{}

func (stubCompany) Get(ctx context.Context) (settings.CompanySettings, error) {
	return settings.Defaults(), nil
}

type stubRenderer struct {
	pdf  []byte
	err  error
	docs []document.Document
}

func (s *stubRenderer) Render(ctx context.Context, doc document.Document) (document.RenderResult, error) {
	s.docs = append(s.docs, doc)
	if s.err != nil {
		return document.RenderResult{}, s.err
	}
	return document.RenderResult{PDF: s.pdf, Length: int64(len(s.pdf))}, nil
}

type recordingEnqueuer struct {
	ids []string
	err error
}

func (r *recordingEnqueuer) EnqueueOfferPDF(ctx context.Context, offerID string) error {
	r.ids = append(r.ids, offerID)
	return r.err
}

func newOfferService(t *testing.T, repo Repository, renderer DocumentRenderer, enq Enqueuer) *Service {
	t.Helper()
	artifacts, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)
	return NewService(testutil.Logger(), repo, stubCompany{}, renderer, artifacts, enq)
}

func seller() users.Ref {
	return users.Ref{ID: "u1", Email: "kari@merhebia.no", Username: "kari"}
}

func TestCreateComputesTotalsAndFiltersSelection(t *testing.T) {
	repo := newMemoryOfferRepo()
	enq := &recordingEnqueuer{}
	svc := newOfferService(t, repo, &stubRenderer{pdf: []byte("pdf")}, enq)

	discountPrice := "300"
	req := CreateRequest{
		SelectedPackage: &pricing.Package{ID: "p1", Name: "Vinterpakke", Price: 10000},
		Marke:           "Volvo",
		Model:           "XC60",
		Info:            "Ola Nordmann\nVeien 1",
		AddedOptionPackages: []pricing.OptionPackage{
			{ID: "op1", Name: "Tilvalg", Options: []pricing.OptionItem{
				{ID: "o1", Name: "Hengerfeste", Price: "1000", DiscountPrice: &discountPrice, IsActive: true, IsSelected: true},
				{ID: "o2", Name: "Takstativ", Price: "500", IsActive: true, IsSelected: false},
			}},
			{ID: "op2", Name: "Tomt", Options: []pricing.OptionItem{
				{ID: "o3", Name: "Matter", Price: "400", IsActive: true, IsSelected: false},
			}},
		},
		Discount: "0",
	}

	saved, err := svc.Create(context.Background(), req, seller())
	require.NoError(t, err)
	require.Equal(t, int64(101), saved.OfferNo)
	require.Equal(t, seller(), saved.CreatedBy)

	// Unselected items and empty packages are stripped from the snapshot.
	require.Len(t, saved.AddedOptionPackages, 1)
	require.Len(t, saved.AddedOptionPackages[0].Options, 1)
	require.Equal(t, "Hengerfeste", saved.AddedOptionPackages[0].Options[0].Name)

	want := pricing.Calculate(req.SelectedPackage, saved.AddedOptionPackages, nil, "0")
	require.Equal(t, want, saved.Totals)

	require.Equal(t, []string{saved.ID}, enq.ids)
}

func TestCreateRejectsInvalidDiscount(t *testing.T) {
	svc := newOfferService(t, newMemoryOfferRepo(), &stubRenderer{}, nil)

	discount := 20000.0
	req := CreateRequest{
		SelectedPackage: &pricing.Package{ID: "p1", Name: "Pakke", Price: 10000, Discount: &discount},
	}
	_, err := svc.Create(context.Background(), req, seller())
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreateRejectsOutOfRangeDiscountPercent(t *testing.T) {
	repo := newMemoryOfferRepo()
	svc := newOfferService(t, repo, &stubRenderer{}, nil)

	req := CreateRequest{
		SelectedPackage: &pricing.Package{ID: "p1", Name: "Pakke", Price: 10000},
		Discount:        "150",
	}
	_, err := svc.Create(context.Background(), req, seller())
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Empty(t, repo.created)
}

func TestCreateSurvivesEnqueueFailure(t *testing.T) {
	repo := newMemoryOfferRepo()
	enq := &recordingEnqueuer{err: errors.New("redis down")}
	svc := newOfferService(t, repo, &stubRenderer{}, enq)

	saved, err := svc.Create(context.Background(), CreateRequest{Discount: ""}, seller())
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
}

func TestGeneratePDFCachesArtifact(t *testing.T) {
	repo := newMemoryOfferRepo()
	renderer := &stubRenderer{pdf: []byte("%PDF fake")}
	svc := newOfferService(t, repo, renderer, nil)

	saved, err := svc.Create(context.Background(), CreateRequest{Info: "Ola Nordmann"}, seller())
	require.NoError(t, err)

	pdf, err := svc.GeneratePDF(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, renderer.pdf, pdf.Content)
	require.Equal(t, "Tilbud-101-Ola Nordmann.pdf", pdf.FileName)
	require.Len(t, renderer.docs, 1)
	require.Equal(t, int64(101), renderer.docs[0].Header.OfferNo)

	// Second download hits the cache, not the renderer.
	again, err := svc.LoadPDF(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, renderer.pdf, again.Content)
	require.Len(t, renderer.docs, 1)
}

func TestLoadPDFRendersOnDemand(t *testing.T) {
	repo := newMemoryOfferRepo()
	renderer := &stubRenderer{pdf: []byte("%PDF fake")}
	svc := newOfferService(t, repo, renderer, nil)

	saved, err := svc.Create(context.Background(), CreateRequest{}, seller())
	require.NoError(t, err)

	pdf, err := svc.LoadPDF(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, renderer.pdf, pdf.Content)
	require.Len(t, renderer.docs, 1)
}

func TestLoadPDFUnknownOffer(t *testing.T) {
	svc := newOfferService(t, newMemoryOfferRepo(), &stubRenderer{}, nil)
	_, err := svc.LoadPDF(context.Background(), "missing")
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestDeleteRemovesArtifact(t *testing.T) {
	repo := newMemoryOfferRepo()
	renderer := &stubRenderer{pdf: []byte("%PDF fake")}
	svc := newOfferService(t, repo, renderer, nil)

	saved, err := svc.Create(context.Background(), CreateRequest{}, seller())
	require.NoError(t, err)
	_, err = svc.GeneratePDF(context.Background(), saved.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), saved.ID))

	_, err = svc.Get(context.Background(), saved.ID)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

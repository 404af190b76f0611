package vehicles

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merhebia-finest/tilbud/internal/catalog/shared"
	"github.com/merhebia-finest/tilbud/internal/platform/httpx"
)

type memoryRepo struct {
	byID map[string]Vehicle
	seq  int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[string]Vehicle)}
}

func (m *memoryRepo) List(ctx context.Context, filters shared.ListFilters) ([]Vehicle, int, error) {
	out := make([]Vehicle, 0, len(m.byID))
	for _, v := range m.byID {
		if filters.Search != "" && !strings.Contains(strings.ToLower(v.Name+" "+v.Model), strings.ToLower(filters.Search)) {
			continue
		}
		if filters.Active != nil && v.Active != *filters.Active {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (m *memoryRepo) ListOptions(ctx context.Context) ([]Option, error) {
	var out []Option
	for _, v := range m.byID {
		if v.Active {
			out = append(out, Option{Name: v.Name, Model: v.Model})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name+out[i].Model < out[j].Name+out[j].Model })
	return out, nil
}

func (m *memoryRepo) Get(ctx context.Context, id string) (Vehicle, error) {
	v, ok := m.byID[id]
	if !ok {
		return Vehicle{}, httpx.ErrNotFound
	}
	return v, nil
}

func (m *memoryRepo) Create(ctx context.Context, v Vehicle) (Vehicle, error) {
	m.seq++
	v.ID = "v" + strconv.Itoa(m.seq)
	m.byID[v.ID] = v
	return v, nil
}

func (m *memoryRepo) Update(ctx context.Context, id string, v Vehicle) error {
	existing, ok := m.byID[id]
	if !ok {
		return httpx.ErrNotFound
	}
	existing.Name, existing.Model, existing.Active = v.Name, v.Model, v.Active
	m.byID[id] = existing
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return httpx.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepo) SetActive(ctx context.Context, id string, active bool) error {
	v, ok := m.byID[id]
	if !ok {
		return httpx.ErrNotFound
	}
	v.Active = active
	m.byID[id] = v
	return nil
}

func TestListOptionsReturnsActiveOnly(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, UpsertRequest{Name: "Volkswagen", Model: "Transporter", Active: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, UpsertRequest{Name: "Ford", Model: "Transit", Active: false})
	require.NoError(t, err)

	options, err := svc.ListOptions(ctx)
	require.NoError(t, err)
	require.Equal(t, []Option{{Name: "Volkswagen", Model: "Transporter"}}, options)
}

func TestToggleActiveFlipsFlag(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, UpsertRequest{Name: "Mercedes-Benz", Model: "Vito", Active: true})
	require.NoError(t, err)

	toggled, err := svc.ToggleActive(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, toggled.Active)

	toggled, err = svc.ToggleActive(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, toggled.Active)
}

func TestToggleActiveUnknownVehicle(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.ToggleActive(context.Background(), "missing")
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestListFiltersBySearch(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, UpsertRequest{Name: "Volkswagen", Model: "Crafter", Active: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, UpsertRequest{Name: "Ford", Model: "Transit Custom", Active: true})
	require.NoError(t, err)

	got, total, err := svc.List(ctx, shared.ListFilters{Page: 1, Limit: 50, Search: "craft"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "Crafter", got[0].Model)
}

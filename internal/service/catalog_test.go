package service

import (
	"encoding/json"
	"testing"

	"gametop-backend/internal/model"
	"gametop-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *CatalogService {
	t.Helper()
	repo, err := repository.Load([]byte(`[
		{"id": "ff", "name": "Free Fire", "packages": [
			{"id": "p1", "amount": "100", "price": 20, "currency": "MAD"},
			{"id": "p2", "amount": "310", "price": 55, "currency": "MAD"},
			{"id": "p3", "amount": "520", "price": 90, "currency": "MAD"}
		]},
		{"id": "pes", "name": "PES", "packages": [
			{"id": "p1", "amount": "550", "price": 60, "currency": "MAD"}
		]},
		{"id": "pubg", "name": "PUBG Mobile", "packages": [
			{"id": "p1", "amount": "60", "price": 15, "currency": "MAD"},
			{"id": "p2", "amount": "325", "price": 65, "currency": "MAD"},
			{"id": "p3", "amount": "660", "price": 125, "currency": "MAD"}
		]},
		{"id": "fifa", "name": "FIFA Mobile", "packages": [
			{"id": "p1", "amount": "500", "price": 50, "currency": "MAD"}
		]}
	]`))
	require.NoError(t, err)
	return NewCatalogService(repo)
}

func ids(games []model.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func TestViewEmptyQueryReturnsFullCatalog(t *testing.T) {
	svc := testCatalog(t)

	for _, key := range []model.SortKey{model.SortDefault, model.SortNameAsc, model.SortNameDesc, model.SortPackages} {
		games, err := svc.View("", key)
		require.NoError(t, err)
		assert.Len(t, games, 4, "sort key %q", key)
	}

	games, err := svc.View("   ", model.SortDefault)
	require.NoError(t, err)
	assert.Equal(t, []string{"ff", "pes", "pubg", "fifa"}, ids(games))
}

func TestViewFiltersCaseInsensitively(t *testing.T) {
	svc := testCatalog(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"fr", []string{"ff"}},
		{"FR", []string{"ff"}},
		{"  fire  ", []string{"ff"}},
		{"p", []string{"pes", "pubg"}},
		{"mobile", []string{"pubg", "fifa"}},
		{"ZZZ", []string{}},
	}
	for _, tt := range tests {
		games, err := svc.View(tt.query, model.SortDefault)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ids(games), "query %q", tt.query)
	}
}

func TestViewSortsByName(t *testing.T) {
	svc := testCatalog(t)

	asc, err := svc.View("", model.SortNameAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"fifa", "ff", "pes", "pubg"}, ids(asc))

	desc, err := svc.View("", model.SortNameDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"pubg", "pes", "ff", "fifa"}, ids(desc))
}

func TestViewSortsByPackageCountStable(t *testing.T) {
	svc := testCatalog(t)

	games, err := svc.View("", model.SortPackages)
	require.NoError(t, err)
	// ff and pubg tie at 3 packages and keep catalog order; same for pes/fifa at 1.
	assert.Equal(t, []string{"ff", "pubg", "pes", "fifa"}, ids(games))
}

func TestViewRejectsUnknownSortKey(t *testing.T) {
	svc := testCatalog(t)

	_, err := svc.View("", model.SortKey("newest"))
	assert.ErrorIs(t, err, ErrInvalidSortKey)

	_, err = svc.View("", model.SortKey(""))
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestViewIsDeterministicAndMemoized(t *testing.T) {
	svc := testCatalog(t)

	a, err := svc.View("p", model.SortPackages)
	require.NoError(t, err)
	b, err := svc.View("p", model.SortPackages)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Queries differing only in case or padding share one memo entry.
	c, err := svc.View("  P ", model.SortPackages)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestViewIdempotent(t *testing.T) {
	svc := testCatalog(t)

	once, err := svc.View("p", model.SortNameAsc)
	require.NoError(t, err)

	// Feeding a view's result back in as a catalog and re-viewing it with an
	// empty query and the same key changes nothing.
	data, err := json.Marshal(once)
	require.NoError(t, err)
	repo2, err := repository.Load(data)
	require.NoError(t, err)

	again, err := NewCatalogService(repo2).View("", model.SortNameAsc)
	require.NoError(t, err)
	assert.Equal(t, once, again)
}

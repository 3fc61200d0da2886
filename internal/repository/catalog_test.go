package repository

import (
	"encoding/json"
	"testing"

	"gametop-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValidCatalog(t *testing.T) {
	repo, err := Load([]byte(`[
		{"id": "ff", "name": "Free Fire", "packages": [
			{"id": "p1", "amount": "100", "price": 20, "currency": "MAD"},
			{"id": "p2", "amount": "310", "price": "55.50", "currency": "MAD"}
		]},
		{"id": "other", "name": "Other", "packages": []}
	]`))
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Count())

	g, ok := repo.Get("ff")
	require.True(t, ok)
	assert.Equal(t, "Free Fire", g.Name)

	_, ok = repo.Get("missing")
	assert.False(t, ok)
}

func TestLoadRejectsDuplicateGameID(t *testing.T) {
	_, err := Load([]byte(`[
		{"id": "ff", "name": "Free Fire", "packages": []},
		{"id": "ff", "name": "Free Fire 2", "packages": []}
	]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate game id")
}

func TestLoadRejectsDuplicatePackageID(t *testing.T) {
	_, err := Load([]byte(`[
		{"id": "ff", "name": "Free Fire", "packages": [
			{"id": "p1", "amount": "100", "price": 20, "currency": "MAD"},
			{"id": "p1", "amount": "310", "price": 55, "currency": "MAD"}
		]}
	]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate package id")
}

func TestLoadRejectsSecondOtherEntry(t *testing.T) {
	_, err := Load([]byte(`[
		{"id": "other", "name": "Other", "packages": []},
		{"id": "ff", "name": "Free Fire", "packages": []}
	]`))
	require.NoError(t, err)

	_, err = Load([]byte(`[
		{"id": "other", "name": "Other", "packages": []},
		{"id": "other2", "name": "Other 2", "packages": []},
		{"id": "other", "name": "Other again", "packages": []}
	]`))
	require.Error(t, err)
}

func TestLoadRejectsMissingIDOrName(t *testing.T) {
	_, err := Load([]byte(`[{"id": "", "name": "X", "packages": []}]`))
	assert.Error(t, err)

	_, err = Load([]byte(`[{"id": "x", "name": "", "packages": []}]`))
	assert.Error(t, err)
}

func TestPriceRoundTripsAsDeclared(t *testing.T) {
	repo, err := Load([]byte(`[
		{"id": "g", "name": "G", "packages": [
			{"id": "num", "amount": "100", "price": 20, "currency": "MAD"},
			{"id": "str", "amount": "200", "price": "حسب اللعبة", "currency": "MAD"}
		]}
	]`))
	require.NoError(t, err)

	num, ok := repo.Package("g", "num")
	require.True(t, ok)
	assert.Equal(t, "20", num.Price.String())

	str, ok := repo.Package("g", "str")
	require.True(t, ok)
	assert.Equal(t, "حسب اللعبة", str.Price.String())

	// Numbers marshal back as numbers, strings as strings.
	bNum, err := json.Marshal(num.Price)
	require.NoError(t, err)
	assert.Equal(t, "20", string(bNum))

	bStr, err := json.Marshal(str.Price)
	require.NoError(t, err)
	assert.Equal(t, `"حسب اللعبة"`, string(bStr))
}

func TestPackageBelongsToGame(t *testing.T) {
	repo, err := Load([]byte(`[
		{"id": "a", "name": "A", "packages": [{"id": "p1", "amount": "1", "price": 1, "currency": "MAD"}]},
		{"id": "b", "name": "B", "packages": [{"id": "p2", "amount": "2", "price": 2, "currency": "MAD"}]}
	]`))
	require.NoError(t, err)

	_, ok := repo.Package("a", "p1")
	assert.True(t, ok)

	// p2 exists, but not under game a.
	_, ok = repo.Package("a", "p2")
	assert.False(t, ok)
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)
	assert.Greater(t, repo.Count(), 0)

	other, ok := repo.Get(model.OtherGameID)
	require.True(t, ok)
	assert.Equal(t, model.OtherGameID, other.ID)
}

func TestAllReturnsCopy(t *testing.T) {
	repo, err := Load([]byte(`[
		{"id": "a", "name": "A", "packages": []},
		{"id": "b", "name": "B", "packages": []}
	]`))
	require.NoError(t, err)

	first := repo.All()
	first[0], first[1] = first[1], first[0]

	again := repo.All()
	assert.Equal(t, "a", again[0].ID)
	assert.Equal(t, "b", again[1].ID)
}

package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gametop-backend/internal/model"
)

//go:embed games.json
var gamesJSON []byte

// CatalogRepository holds the static game catalog. It is loaded once at
// startup and read-only afterwards, so it can be shared without locking.
type CatalogRepository struct {
	games []model.Game
	byID  map[string]int
}

// NewCatalogRepository loads the embedded catalog.
func NewCatalogRepository() (*CatalogRepository, error) {
	return Load(gamesJSON)
}

// Load parses and validates a catalog document.
func Load(data []byte) (*CatalogRepository, error) {
	var games []model.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byID := make(map[string]int, len(games))
	otherSeen := false
	for i, g := range games {
		if g.ID == "" || g.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: id and name are required", i)
		}
		if _, dup := byID[g.ID]; dup {
			return nil, fmt.Errorf("duplicate game id %q", g.ID)
		}
		byID[g.ID] = i

		if g.ID == model.OtherGameID {
			if otherSeen {
				return nil, fmt.Errorf("more than one game with sentinel id %q", model.OtherGameID)
			}
			otherSeen = true
		}

		pkgIDs := make(map[string]bool, len(g.Packages))
		for _, p := range g.Packages {
			if p.ID == "" {
				return nil, fmt.Errorf("game %q: package id is required", g.ID)
			}
			if pkgIDs[p.ID] {
				return nil, fmt.Errorf("game %q: duplicate package id %q", g.ID, p.ID)
			}
			pkgIDs[p.ID] = true
		}
	}

	return &CatalogRepository{games: games, byID: byID}, nil
}

// All returns the catalog in declaration order. The returned slice is a copy;
// the games themselves are shared and must not be mutated.
func (r *CatalogRepository) All() []model.Game {
	out := make([]model.Game, len(r.games))
	copy(out, r.games)
	return out
}

// Get returns the game with the given id.
func (r *CatalogRepository) Get(id string) (model.Game, bool) {
	i, ok := r.byID[id]
	if !ok {
		return model.Game{}, false
	}
	return r.games[i], true
}

// Package resolves a package inside a game, preserving the
// package-belongs-to-game invariant for order validation.
func (r *CatalogRepository) Package(gameID, packageID string) (model.TopUpPackage, bool) {
	g, ok := r.Get(gameID)
	if !ok {
		return model.TopUpPackage{}, false
	}
	for _, p := range g.Packages {
		if p.ID == packageID {
			return p, true
		}
	}
	return model.TopUpPackage{}, false
}

// Count returns the number of games in the catalog.
func (r *CatalogRepository) Count() int {
	return len(r.games)
}

package service

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"gametop-backend/internal/model"
	"gametop-backend/internal/repository"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

type viewKey struct {
	query string
	sort  model.SortKey
}

// CatalogService computes filtered, sorted views of the catalog. Views are
// pure functions of (query, sort key); since the catalog never changes the
// memo cache never needs invalidation.
type CatalogService struct {
	repo *repository.CatalogRepository

	mu   sync.Mutex
	coll *collate.Collator // not safe for concurrent use, guarded by mu
	memo map[viewKey][]model.Game
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
		coll: collate.New(language.Arabic),
		memo: make(map[viewKey][]model.Game),
	}
}

// View filters the catalog by a case-insensitive substring match on the game
// name, then orders the result by the sort key. An empty or whitespace-only
// query yields the full catalog. Callers must not mutate the returned slice.
func (s *CatalogService) View(query string, key model.SortKey) ([]model.Game, error) {
	if !key.Valid() {
		return nil, ErrInvalidSortKey
	}

	k := viewKey{query: strings.ToLower(strings.TrimSpace(query)), sort: key}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.memo[k]; ok {
		return cached, nil
	}

	games := s.repo.All()
	if k.query != "" {
		filtered := games[:0]
		for _, g := range games {
			if strings.Contains(strings.ToLower(g.Name), k.query) {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}

	switch k.sort {
	case model.SortNameAsc:
		sort.SliceStable(games, func(i, j int) bool {
			return s.coll.CompareString(games[i].Name, games[j].Name) < 0
		})
	case model.SortNameDesc:
		sort.SliceStable(games, func(i, j int) bool {
			return s.coll.CompareString(games[j].Name, games[i].Name) < 0
		})
	case model.SortPackages:
		// Stable: ties keep their relative catalog order.
		sort.SliceStable(games, func(i, j int) bool {
			return len(games[i].Packages) > len(games[j].Packages)
		})
	case model.SortDefault:
		// Declaration order, untouched.
	}

	s.memo[k] = games
	return games, nil
}

// Get returns a single game by id.
func (s *CatalogService) Get(id string) (model.Game, bool) {
	return s.repo.Get(id)
}

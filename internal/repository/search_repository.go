package repository

import (
	"context"
	"errors"

	"github.com/railswift/railswift/internal/model"
	"github.com/railswift/railswift/internal/store"
)

// maxRecentSearches caps the persisted recent-search list.
const maxRecentSearches = 5

// SearchRepo persists the recent-search list under the `recent_searches`
// key, newest first.
type SearchRepo struct{ store *store.Store }

func NewSearchRepo(st *store.Store) *SearchRepo { return &SearchRepo{store: st} }

// Save prepends the query and trims the list to the cap.
func (r *SearchRepo) Save(ctx context.Context, q model.SearchQuery) error {
	prev, err := r.Recent(ctx)
	if err != nil {
		return err
	}
	if len(prev) > maxRecentSearches-1 {
		prev = prev[:maxRecentSearches-1]
	}
	return r.store.WriteJSON(ctx, store.KeyRecentSearches, append([]model.SearchQuery{q}, prev...))
}

// Recent returns the saved queries, newest first; an absent or corrupt
// value reads as empty.
func (r *SearchRepo) Recent(ctx context.Context) ([]model.SearchQuery, error) {
	var list []model.SearchQuery
	if _, err := r.store.ReadJSON(ctx, store.KeyRecentSearches, &list); err != nil {
		if errors.Is(err, store.ErrCorruptValue) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

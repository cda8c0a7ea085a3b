package repository

import (
	"context"
	"errors"

	"github.com/railswift/railswift/internal/model"
	"github.com/railswift/railswift/internal/store"
)

// currentUser reads the session record. A missing or corrupt current_user
// value means no session; only real storage errors propagate. Shared by
// the account and booking repositories, which both scope work to the
// session's email.
func currentUser(ctx context.Context, st *store.Store) (*model.User, error) {
	var u model.User
	found, err := st.ReadJSON(ctx, store.KeyCurrentUser, &u)
	if err != nil {
		if errors.Is(err, store.ErrCorruptValue) {
			return nil, nil
		}
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}

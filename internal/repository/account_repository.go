package repository

import (
	"context"
	"errors"

	"github.com/railswift/railswift/internal/model"
	"github.com/railswift/railswift/internal/store"
)

// AccountRepo covers registration, login/logout, the single current
// session and profile updates. The user list lives whole under the
// `users` key; the session is the `current_user` record plus the `auth`
// flag mirrored alongside it for cheap presence checks.
type AccountRepo struct{ store *store.Store }

func NewAccountRepo(st *store.Store) *AccountRepo { return &AccountRepo{store: st} }

// users loads the master user list, defaulting to empty when the key is
// absent or its value fails to decode.
func (r *AccountRepo) users(ctx context.Context) ([]model.User, error) {
	var list []model.User
	if _, err := r.store.ReadJSON(ctx, store.KeyUsers, &list); err != nil {
		if errors.Is(err, store.ErrCorruptValue) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// Register appends a new user unless the email is already taken. The
// password is stored as given; this demo has no hashing (see model.User).
func (r *AccountRepo) Register(ctx context.Context, name, email, password string) error {
	list, err := r.users(ctx)
	if err != nil {
		return err
	}
	for _, u := range list {
		if u.Email == email {
			return ErrEmailExists
		}
	}
	list = append(list, model.User{Name: name, Email: email, Password: password})
	return r.store.WriteJSON(ctx, store.KeyUsers, list)
}

// Login scans the user list for an exact, case-sensitive email+password
// match. On success the sanitized user becomes the current session and the
// auth flag is set; the sanitized user is returned. There is no rate
// limiting or lockout.
func (r *AccountRepo) Login(ctx context.Context, email, password string) (model.User, error) {
	list, err := r.users(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range list {
		if u.Email == email && u.Password == password {
			clean := u.Sanitized()
			if err := r.store.WriteJSON(ctx, store.KeyCurrentUser, clean); err != nil {
				return model.User{}, err
			}
			if err := r.store.WriteJSON(ctx, store.KeyAuth, true); err != nil {
				return model.User{}, err
			}
			return clean, nil
		}
	}
	return model.User{}, ErrInvalidCredentials
}

// Logout removes the session record and clears the auth flag. The user
// list is untouched.
func (r *AccountRepo) Logout(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.KeyCurrentUser); err != nil {
		return err
	}
	return r.store.WriteJSON(ctx, store.KeyAuth, false)
}

// Current returns the session user, or nil when no session exists.
func (r *AccountRepo) Current(ctx context.Context) (*model.User, error) {
	return currentUser(ctx, r.store)
}

// Authenticated reports the mirrored auth flag. Absent or unreadable
// counts as false.
func (r *AccountRepo) Authenticated(ctx context.Context) (bool, error) {
	var flag bool
	if _, err := r.store.ReadJSON(ctx, store.KeyAuth, &flag); err != nil {
		if errors.Is(err, store.ErrCorruptValue) {
			return false, nil
		}
		return false, err
	}
	return flag, nil
}

// UpdateCurrent merges the update into both the session record and the
// matching master-list entry (matched by email, which never changes). It
// returns ErrNoActiveSession when no session is established.
func (r *AccountRepo) UpdateCurrent(ctx context.Context, upd model.UserUpdate) (*model.User, error) {
	cur, err := r.Current(ctx)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, ErrNoActiveSession
	}

	upd.Apply(cur)
	if err := r.store.WriteJSON(ctx, store.KeyCurrentUser, cur); err != nil {
		return nil, err
	}

	list, err := r.users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Email == cur.Email {
			upd.Apply(&list[i])
			if err := r.store.WriteJSON(ctx, store.KeyUsers, list); err != nil {
				return nil, err
			}
			break
		}
	}
	return cur, nil
}

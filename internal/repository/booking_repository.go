package repository

import (
	"context"
	"errors"

	"github.com/railswift/railswift/internal/model"
	"github.com/railswift/railswift/internal/store"
	"github.com/railswift/railswift/internal/utils"
)

// GuestOwner is stamped on bookings added while no session exists. Such
// records can never be listed back through a real account; the HTTP layer
// therefore requires a session before it lets a booking through, and the
// fallback only matters for direct ledger use.
const GuestOwner = "guest"

// BookingRepo is the booking ledger: an append-mostly list stored whole
// under the `bookings` key, newest first by construction. Records are
// never deleted; cancellation rewrites the status in place.
type BookingRepo struct{ store *store.Store }

func NewBookingRepo(st *store.Store) *BookingRepo { return &BookingRepo{store: st} }

func (r *BookingRepo) all(ctx context.Context) ([]model.Booking, error) {
	var list []model.Booking
	if _, err := r.store.ReadJSON(ctx, store.KeyBookings, &list); err != nil {
		if errors.Is(err, store.ErrCorruptValue) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// Add stamps the booking with the current session's email (GuestOwner when
// none), assigns a reference when the caller left the ID empty, and
// prepends it to the ledger. The stamped record is returned.
func (r *BookingRepo) Add(ctx context.Context, b model.Booking) (model.Booking, error) {
	cur, err := currentUser(ctx, r.store)
	if err != nil {
		return model.Booking{}, err
	}
	if cur != nil {
		b.UserEmail = cur.Email
	} else {
		b.UserEmail = GuestOwner
	}
	if b.ID == "" {
		b.ID = utils.NewBookingRef()
	}

	list, err := r.all(ctx)
	if err != nil {
		return model.Booking{}, err
	}
	list = append([]model.Booking{b}, list...)
	if err := r.store.WriteJSON(ctx, store.KeyBookings, list); err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

// ListForCurrentUser filters the ledger down to the session user's
// bookings, preserving prepend order (newest first). No session means an
// empty list, not an error.
func (r *BookingRepo) ListForCurrentUser(ctx context.Context) ([]model.Booking, error) {
	cur, err := currentUser(ctx, r.store)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return []model.Booking{}, nil
	}

	list, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Booking, 0, len(list))
	for _, b := range list {
		if b.UserEmail == cur.Email {
			out = append(out, b)
		}
	}
	return out, nil
}

// Find returns the first booking with the given id, or nil when none
// matches. Ids are not guaranteed unique; the first (newest) match wins.
func (r *BookingRepo) Find(ctx context.Context, id string) (*model.Booking, error) {
	list, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// Cancel sets the status of every booking with the given id to Cancelled
// and writes the whole list back. An unknown id is a no-op, and repeating
// a cancel rewrites the same status, so the operation is idempotent.
func (r *BookingRepo) Cancel(ctx context.Context, id string) error {
	list, err := r.all(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].Status = model.StatusCancelled
		}
	}
	return r.store.WriteJSON(ctx, store.KeyBookings, list)
}

// Package repository implements the account manager, booking ledger and
// recent-search list as typed operations over the key-value store. The
// sentinel errors below are the only failure kinds surfaced to handlers;
// everything else is an infrastructure error passed through as-is.
package repository

import "errors"

// ErrEmailExists is returned by Register when a user with the same email
// is already present. Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidCredentials is returned by Login when no user matches the
// exact email and password pair. Handlers translate it into HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoActiveSession is returned by operations that need a current user
// when none is established.
var ErrNoActiveSession = errors.New("no active session")

package model

// User represents an account record as stored in the persisted `users`
// collection. The demo keeps the password in the stored record in clear
// text; the session copy and every API response carry the record with the
// password stripped, which the `omitempty` tag makes transparent.
//
// Fields:
//  Name     – display name of the account holder.
//  Email    – unique account key; registration rejects duplicates.
//  Password – clear-text password (empty on session copies and responses).
//  Avatar   – optional image reference; nil when the user never set one.
type User struct {
    Name     string  `json:"name"`
    Email    string  `json:"email"`
    Password string  `json:"password,omitempty"`
    Avatar   *string `json:"avatar,omitempty"`
}

// Sanitized returns a copy of the user with the password removed. Session
// records and handler responses always go through this.
func (u User) Sanitized() User {
    u.Password = ""
    return u
}

// UserUpdate names every field of a User that a profile update may change.
// A nil field leaves the stored value untouched. Email is deliberately not
// updatable: it is the account key and booking ownership hangs off it.
type UserUpdate struct {
    Name   *string `json:"name,omitempty"`
    Avatar *string `json:"avatar,omitempty"`
}

// Apply merges the non-nil fields of the update into u.
func (upd UserUpdate) Apply(u *User) {
    if upd.Name != nil {
        u.Name = *upd.Name
    }
    if upd.Avatar != nil {
        u.Avatar = upd.Avatar
    }
}

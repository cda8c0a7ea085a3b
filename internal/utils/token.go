package utils

import (
	"fmt"
	"math/rand"
)

// NewBookingRef returns a TXN-prefixed six-digit reference for a booking
// or payment. References are not guaranteed unique; the ledger tolerates
// collisions and never looks bookings up across users by reference alone.
func NewBookingRef() string {
	return fmt.Sprintf("TXN%06d", rand.Intn(1000000))
}

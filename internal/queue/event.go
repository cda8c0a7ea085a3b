// Package queue defines message payloads exchanged over the message broker.
package queue

// Event kinds published to the booking.lifecycle queue.
const (
	KindBookingCreated   = "booking.created"
	KindBookingCancelled = "booking.cancelled"
)

// BookingEvent is published when a booking is created or cancelled. It
// carries enough of the booking snapshot for downstream consumers to log
// or notify without reading the store.
type BookingEvent struct {
	Kind          string `json:"kind"`
	BookingID     string `json:"booking_id"`
	UserEmail     string `json:"user_email"`
	TrainNumber   string `json:"train_number"`
	TrainName     string `json:"train_name"`
	From          string `json:"from"`
	To            string `json:"to"`
	Class         string `json:"class"`
	Passengers    int    `json:"passengers"`
	TravelDate    string `json:"travel_date"`
	TotalFare     int    `json:"total_fare"`
	PaymentMethod string `json:"payment_method"`
	OccurredAt    string `json:"occurred_at"`
}

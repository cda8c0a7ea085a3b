package model

// BookingStatus enumerates the lifecycle states of a booking. The only
// transition the system ever performs is Upcoming -> Cancelled. Completed
// is a defined state with no code path leading into it; it is kept so that
// stored records using it remain representable.
type BookingStatus string

const (
    StatusUpcoming  BookingStatus = "Upcoming"
    StatusCompleted BookingStatus = "Completed"
    StatusCancelled BookingStatus = "Cancelled"
)

// Gender values accepted for a passenger.
type Gender string

const (
    GenderMale   Gender = "Male"
    GenderFemale Gender = "Female"
    GenderOther  Gender = "Other"
)

// Passenger belongs to exactly one booking and has no lifecycle of its own.
//
// Fields:
//  Name           – passenger name as printed on the ticket.
//  Age            – age in years.
//  Gender         – Male, Female or Other.
//  IDType         – identity document kind (Aadhar, PAN, Passport, ...).
//  IDNumber       – identity document number.
//  SeatPreference – requested berth/seat (Lower, Upper, Window, ...).
type Passenger struct {
    Name           string `json:"name"`
    Age            int    `json:"age"`
    Gender         Gender `json:"gender"`
    IDType         string `json:"idType"`
    IDNumber       string `json:"idNumber"`
    SeatPreference string `json:"seatPreference"`
}

// Booking is the persisted record created at payment confirmation. Train
// and class are stored as snapshots, not references, and the record is
// never deleted; cancellation only flips the status.
//
// Fields:
//  ID            – generated TXN reference; not guaranteed unique.
//  UserEmail     – owning account's email, stamped at creation from the
//                  active session ("guest" when none existed).
//  Train         – full snapshot of the booked train.
//  SelectedClass – snapshot of the chosen class, including the fare paid.
//  Passengers    – travellers covered by this booking.
//  Date          – travel date (YYYY-MM-DD).
//  TotalFare     – class price times passenger count, in rupees.
//  Status        – Upcoming, Completed or Cancelled.
//  PaymentMethod – UPI, CARD, NET or COD as picked on payment.
//  BookingDate   – date the booking was made (YYYY-MM-DD).
type Booking struct {
    ID            string        `json:"id"`
    UserEmail     string        `json:"userEmail"`
    Train         Train         `json:"train"`
    SelectedClass TrainClass    `json:"selectedClass"`
    Passengers    []Passenger   `json:"passengers"`
    Date          string        `json:"date"`
    TotalFare     int           `json:"totalFare"`
    Status        BookingStatus `json:"status"`
    PaymentMethod string        `json:"paymentMethod"`
    BookingDate   string        `json:"bookingDate"`
}

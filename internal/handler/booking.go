package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/railswift/railswift/internal/config"
	"github.com/railswift/railswift/internal/model"
	"github.com/railswift/railswift/internal/queue"
	"github.com/railswift/railswift/internal/repository"
	queue_publisher "github.com/railswift/railswift/internal/service"
)

// BookingHandler serves the booking ledger: creation at payment
// confirmation, the my-bookings list and cancellation.
type BookingHandler struct {
	Cfg      config.Config
	Bookings *repository.BookingRepo
}

func NewBookingHandler(cfg config.Config, b *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Cfg: cfg, Bookings: b}
}

// createBookingReq carries the snapshots collected across the booking
// flow. The fare arrives precomputed from the class-selection step; when
// absent it is derived from the class price and passenger count.
type createBookingReq struct {
	Train         model.Train        `json:"train"`
	SelectedClass model.TrainClass   `json:"selectedClass"`
	Passengers    []model.Passenger  `json:"passengers"`
	Date          string             `json:"date"`
	TotalFare     int                `json:"totalFare"`
	PaymentMethod string             `json:"paymentMethod"`
}

// Create records a booking at payment confirmation. Ownership is stamped
// from the session by the ledger; the route's JWT middleware guarantees a
// logged-in caller, so the ledger's guest fallback is unreachable here.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Passengers) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one passenger required"})
	}
	if req.Date == "" || req.PaymentMethod == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date/paymentMethod required"})
	}
	if req.TotalFare == 0 {
		req.TotalFare = req.SelectedClass.Price * len(req.Passengers)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.Add(ctx, model.Booking{
		Train:         req.Train,
		SelectedClass: req.SelectedClass,
		Passengers:    req.Passengers,
		Date:          req.Date,
		TotalFare:     req.TotalFare,
		Status:        model.StatusUpcoming,
		PaymentMethod: req.PaymentMethod,
		BookingDate:   time.Now().UTC().Format("2006-01-02"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	h.publish(queue.KindBookingCreated, b)
	return c.JSON(http.StatusCreated, b)
}

// List returns the session user's bookings, newest first. An empty list is
// returned when no session exists rather than an error, matching the
// my-bookings screen's behavior after logout.
func (h *BookingHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Bookings.ListForCurrentUser(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// Cancel flips the booking to Cancelled. Unknown ids and repeated cancels
// both succeed; the operation is idempotent by design of the ledger.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.Find(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}
	if err := h.Bookings.Cancel(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	if b != nil {
		h.publish(queue.KindBookingCancelled, *b)
	}
	return c.NoContent(http.StatusNoContent)
}

// publish sends a lifecycle event in the background. Publishing is best
// effort: failures are logged by the publisher and never surface to the
// API caller.
func (h *BookingHandler) publish(kind string, b model.Booking) {
	if !h.Cfg.QueueEnabled {
		return
	}
	ev := queue.BookingEvent{
		Kind:          kind,
		BookingID:     b.ID,
		UserEmail:     b.UserEmail,
		TrainNumber:   b.Train.Number,
		TrainName:     b.Train.Name,
		From:          b.Train.From,
		To:            b.Train.To,
		Class:         b.SelectedClass.Type,
		Passengers:    len(b.Passengers),
		TravelDate:    b.Date,
		TotalFare:     b.TotalFare,
		PaymentMethod: b.PaymentMethod,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingEvent(ctx, ev)
	}()
}

package response

import (
	"time"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/usecase/commands"
	"bluehaven/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// BookingResponse is the booking record as stored, with JSON names matching the file store.
type BookingResponse struct {
	ID               string        `json:"id"`
	ConfirmationCode string        `json:"confirmationCode"`
	GuestName        string        `json:"name"`
	GuestEmail       string        `json:"email"`
	GuestPhone       string        `json:"phone"`
	Guests           int           `json:"guests"`
	CheckIn          calendar.Date `json:"checkIn"`
	CheckOut         calendar.Date `json:"checkOut"`
	CheckInTime      string        `json:"checkInTime"`
	Nights           int           `json:"nights"`
	TotalCents       int64         `json:"totalCents"`
	Total            string        `json:"total"`
	SpecialRequests  string        `json:"specialRequests"`
	Status           string        `json:"status"`
	PaymentStatus    string        `json:"paymentStatus"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *BookingResponse {
	var out BookingResponse
	_ = copier.Copy(&out, v)
	return &out
}

func FromReservationViews(vs []*queries.ReservationView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

type ClearBookingsResponse struct {
	Deleted int `json:"deleted"`
}

type PaymentResponse struct {
	ID             uuid.UUID `json:"id"`
	ReservationID  string    `json:"bookingId"`
	Method         string    `json:"method"`
	AmountCents    int64     `json:"amountCents"`
	FeeCents       int64     `json:"feeCents"`
	TotalPaidCents int64     `json:"totalPaidCents"`
	Reference      string    `json:"reference"`
	Status         string    `json:"status"`
	TransactionID  string    `json:"transactionId,omitempty"`
	Instructions   string    `json:"instructions,omitempty"`
	RedirectURL    string    `json:"redirectUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	var out PaymentResponse
	_ = copier.Copy(&out, v)
	return &out
}

type PaymentResultResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Payment *PaymentResponse `json:"payment"`
	Booking *BookingResponse `json:"booking"`
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentResultResponse {
	return &PaymentResultResponse{
		Success: r.Success,
		Message: r.Message,
		Payment: FromPaymentView(r.Payment),
		Booking: FromReservationView(r.Reservation),
	}
}

package queries

import (
	"time"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/payment"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/review"
	"bluehaven/internal/domain/selection"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID               string
	ConfirmationCode string
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	Guests           int
	CheckIn          calendar.Date
	CheckOut         calendar.Date
	CheckInTime      string
	Nights           int
	TotalCents       int64
	Total            string
	SpecialRequests  string
	Status           string
	PaymentStatus    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:               r.ID(),
		ConfirmationCode: r.ConfirmationCode(),
		GuestName:        r.Guest().Name(),
		GuestEmail:       r.Guest().Email().Value(),
		GuestPhone:       r.Guest().Phone(),
		Guests:           r.PartySize().Value(),
		CheckIn:          r.Stay().CheckIn(),
		CheckOut:         r.Stay().CheckOut(),
		CheckInTime:      r.CheckInTime().String(),
		Nights:           r.Nights(),
		TotalCents:       r.Total().Cents(),
		Total:            r.Total().String(),
		SpecialRequests:  r.SpecialRequests().String(),
		Status:           r.Status().String(),
		PaymentStatus:    r.PaymentStatus().String(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

func NewReservationViews(rs []*reservation.Reservation) []*ReservationView {
	views := make([]*ReservationView, len(rs))
	for i, r := range rs {
		views[i] = NewReservationView(r)
	}
	return views
}

type PaymentView struct {
	ID             uuid.UUID
	ReservationID  string
	Method         string
	AmountCents    int64
	FeeCents       int64
	TotalPaidCents int64
	Reference      string
	Status         string
	TransactionID  string
	Instructions   string
	RedirectURL    string
	CreatedAt      time.Time
}

func NewPaymentView(p *payment.Payment) *PaymentView {
	return &PaymentView{
		ID:             p.ID(),
		ReservationID:  p.ReservationID(),
		Method:         string(p.Method()),
		AmountCents:    p.AmountCents(),
		FeeCents:       p.FeeCents(),
		TotalPaidCents: p.TotalPaidCents(),
		Reference:      p.Reference(),
		Status:         string(p.Status()),
		TransactionID:  p.TransactionID(),
		Instructions:   p.Instructions(),
		RedirectURL:    p.RedirectURL(),
		CreatedAt:      p.CreatedAt(),
	}
}

type ReviewView struct {
	ID            uuid.UUID
	ReservationID string
	GuestName     string
	Rating        int
	Title         string
	Comment       string
	CreatedAt     time.Time
}

func NewReviewView(r *review.Review) *ReviewView {
	return &ReviewView{
		ID:            r.ID(),
		ReservationID: r.ReservationID(),
		GuestName:     r.GuestName(),
		Rating:        r.Rating().Value(),
		Title:         r.Title().String(),
		Comment:       r.Comment().String(),
		CreatedAt:     r.CreatedAt(),
	}
}

type SelectionView struct {
	CheckIn  *calendar.Date
	CheckOut *calendar.Date
	State    string
	Nights   int
}

func NewSelectionView(s selection.Selection) SelectionView {
	return SelectionView{
		CheckIn:  s.CheckIn(),
		CheckOut: s.CheckOut(),
		State:    string(s.State()),
		Nights:   s.Nights(),
	}
}

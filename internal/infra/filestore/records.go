package filestore

import (
	"time"

	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/payment"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/domain/review"

	"github.com/google/uuid"
)

type bookingRecord struct {
	ID               string        `json:"id"`
	ConfirmationCode string        `json:"confirmationCode"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Guests           int           `json:"guests"`
	CheckIn          calendar.Date `json:"checkIn"`
	CheckOut         calendar.Date `json:"checkOut"`
	CheckInTime      string        `json:"checkInTime"`
	Nights           int           `json:"nights"`
	TotalCents       int64         `json:"totalCents"`
	SpecialRequests  string        `json:"specialRequests,omitempty"`
	Status           string        `json:"status"`
	PaymentStatus    string        `json:"paymentStatus"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func toBookingRecord(r *reservation.Reservation) bookingRecord {
	rec := r.Record()
	return bookingRecord{
		ID:               rec.ID,
		ConfirmationCode: rec.ConfirmationCode,
		Name:             rec.GuestName,
		Email:            rec.GuestEmail,
		Phone:            rec.GuestPhone,
		Guests:           rec.Guests,
		CheckIn:          rec.CheckIn,
		CheckOut:         rec.CheckOut,
		CheckInTime:      rec.CheckInTime,
		Nights:           rec.Nights,
		TotalCents:       rec.TotalCents,
		SpecialRequests:  rec.SpecialRequests,
		Status:           rec.Status,
		PaymentStatus:    rec.PaymentStatus,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

func (b bookingRecord) toDomain() (*reservation.Reservation, error) {
	return reservation.Reconstruct(reservation.Record{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		GuestName:        b.Name,
		GuestEmail:       b.Email,
		GuestPhone:       b.Phone,
		Guests:           b.Guests,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		CheckInTime:      b.CheckInTime,
		Nights:           b.Nights,
		TotalCents:       b.TotalCents,
		SpecialRequests:  b.SpecialRequests,
		Status:           b.Status,
		PaymentStatus:    b.PaymentStatus,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	})
}

type paymentRecord struct {
	ID            uuid.UUID `json:"id"`
	BookingID     string    `json:"bookingId"`
	Method        string    `json:"method"`
	AmountCents   int64     `json:"amountCents"`
	FeeCents      int64     `json:"feeCents"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId,omitempty"`
	Instructions  string    `json:"instructions,omitempty"`
	RedirectURL   string    `json:"redirectUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toPaymentRecord(p *payment.Payment) paymentRecord {
	rec := p.Record()
	return paymentRecord{
		ID:            rec.ID,
		BookingID:     rec.ReservationID,
		Method:        rec.Method,
		AmountCents:   rec.AmountCents,
		FeeCents:      rec.FeeCents,
		Reference:     rec.Reference,
		Status:        rec.Status,
		TransactionID: rec.TransactionID,
		Instructions:  rec.Instructions,
		RedirectURL:   rec.RedirectURL,
		CreatedAt:     rec.CreatedAt,
	}
}

func (p paymentRecord) toDomain() (*payment.Payment, error) {
	return payment.Reconstruct(payment.Record{
		ID:            p.ID,
		ReservationID: p.BookingID,
		Method:        p.Method,
		AmountCents:   p.AmountCents,
		FeeCents:      p.FeeCents,
		Reference:     p.Reference,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		Instructions:  p.Instructions,
		RedirectURL:   p.RedirectURL,
		CreatedAt:     p.CreatedAt,
	})
}

type reviewRecord struct {
	ID         uuid.UUID `json:"id"`
	BookingID  string    `json:"bookingId"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title,omitempty"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toReviewRecord(r *review.Review) reviewRecord {
	return reviewRecord{
		ID:         r.ID(),
		BookingID:  r.ReservationID(),
		GuestName:  r.GuestName(),
		GuestEmail: r.GuestEmail(),
		Rating:     r.Rating().Value(),
		Title:      r.Title().String(),
		Comment:    r.Comment().String(),
		CreatedAt:  r.CreatedAt(),
	}
}

func (r reviewRecord) toDomain() *review.Review {
	return review.ReconstructReview(r.ID, r.BookingID, r.GuestName, r.GuestEmail, r.Rating, r.Title, r.Comment, r.CreatedAt)
}

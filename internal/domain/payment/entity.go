package payment

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"bluehaven/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount = errors.New("payment amount must be positive")
	ErrInvalidStatus     = errors.New("invalid payment record status")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusSuccess, StatusFailed:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Outcome is what a provider reports for one attempt.
type Outcome struct {
	Status        Status
	TransactionID string
	Instructions  string
	RedirectURL   string
	Message       string
}

type Payment struct {
	id            uuid.UUID
	reservationID string
	method        MethodID
	amountCents   int64
	feeCents      int64
	reference     string
	status        Status
	transactionID string
	instructions  string
	redirectURL   string
	createdAt     time.Time
}

// NewPayment prices an attempt for amountCents with the method's fee.
func NewPayment(reservationID string, m Method, amountCents int64, now time.Time) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}
	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		method:        m.ID,
		amountCents:   amountCents,
		feeCents:      m.Fee(amountCents),
		reference:     NewReference(now),
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

// NewReference is "BH" + base36 time + 5 random characters.
func NewReference(now time.Time) string {
	return "BH" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)) + reservation.RandomString(5)
}

func (p *Payment) Apply(o Outcome) {
	p.status = o.Status
	p.transactionID = o.TransactionID
	p.instructions = o.Instructions
	p.redirectURL = o.RedirectURL
}

type Record struct {
	ID            uuid.UUID
	ReservationID string
	Method        string
	AmountCents   int64
	FeeCents      int64
	Reference     string
	Status        string
	TransactionID string
	Instructions  string
	RedirectURL   string
	CreatedAt     time.Time
}

func Reconstruct(rec Record) (*Payment, error) {
	status, err := NewStatus(rec.Status)
	if err != nil {
		return nil, err
	}
	return &Payment{
		id:            rec.ID,
		reservationID: rec.ReservationID,
		method:        MethodID(rec.Method),
		amountCents:   rec.AmountCents,
		feeCents:      rec.FeeCents,
		reference:     rec.Reference,
		status:        status,
		transactionID: rec.TransactionID,
		instructions:  rec.Instructions,
		redirectURL:   rec.RedirectURL,
		createdAt:     rec.CreatedAt,
	}, nil
}

func (p *Payment) Record() Record {
	return Record{
		ID:            p.id,
		ReservationID: p.reservationID,
		Method:        string(p.method),
		AmountCents:   p.amountCents,
		FeeCents:      p.feeCents,
		Reference:     p.reference,
		Status:        string(p.status),
		TransactionID: p.transactionID,
		Instructions:  p.instructions,
		RedirectURL:   p.redirectURL,
		CreatedAt:     p.createdAt,
	}
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) ReservationID() string { return p.reservationID }
func (p *Payment) Method() MethodID      { return p.method }
func (p *Payment) AmountCents() int64    { return p.amountCents }
func (p *Payment) FeeCents() int64       { return p.feeCents }
func (p *Payment) TotalPaidCents() int64 { return p.amountCents + p.feeCents }
func (p *Payment) Reference() string     { return p.reference }
func (p *Payment) Status() Status        { return p.status }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) Instructions() string  { return p.instructions }
func (p *Payment) RedirectURL() string   { return p.redirectURL }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }

package payment

import (
	"errors"
	"math"
	"time"
)

var ErrUnknownMethod = errors.New("unknown payment method")

const Currency = "ZAR"

type MethodID string

const (
	MethodPayFast MethodID = "payfast"
	MethodYoco    MethodID = "yoco"
	MethodEFT     MethodID = "eft"
	MethodCash    MethodID = "cash"
)

type Kind string

const (
	KindInstant Kind = "instant"
	KindCard    Kind = "card"
	KindManual  Kind = "manual"
	KindOnSite  Kind = "on_site"
)

// Method describes one payment option offered at checkout.
type Method struct {
	ID          MethodID
	Name        string
	Description string
	Kind        Kind
	FeePercent  float64
	Latency     time.Duration
}

// Settles reports whether a successful provider call marks the booking as paid.
// Manual transfers and cash stay pending until the owner reconciles them.
func (m Method) Settles() bool {
	return m.Kind == KindInstant || m.Kind == KindCard
}

// Fee is the processing fee on amountCents rounded to the cent.
func (m Method) Fee(amountCents int64) int64 {
	return int64(math.Round(float64(amountCents) * m.FeePercent / 100.0))
}

var catalog = []Method{
	{ID: MethodPayFast, Name: "PayFast", Description: "Instant EFT, credit card, and more", Kind: KindInstant, FeePercent: 3.5, Latency: time.Second},
	{ID: MethodYoco, Name: "Yoco", Description: "Credit and debit cards", Kind: KindCard, FeePercent: 2.9, Latency: time.Second},
	{ID: MethodEFT, Name: "Bank Transfer (EFT)", Description: "Direct bank transfer", Kind: KindManual, FeePercent: 0, Latency: 500 * time.Millisecond},
	{ID: MethodCash, Name: "Cash on Arrival", Description: "Pay when you arrive", Kind: KindOnSite, FeePercent: 0, Latency: 500 * time.Millisecond},
}

func Methods() []Method {
	out := make([]Method, len(catalog))
	copy(out, catalog)
	return out
}

func LookupMethod(id string) (Method, error) {
	for _, m := range catalog {
		if string(m.ID) == id {
			return m, nil
		}
	}
	return Method{}, ErrUnknownMethod
}

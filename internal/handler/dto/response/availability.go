package response

import (
	"bluehaven/internal/domain/calendar"
	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/usecase/queries"
)

type AvailabilityResponse struct {
	BlockedDates []string `json:"blockedDates"`
}

func FromBlockedDates(s calendar.Set) *AvailabilityResponse {
	dates := s.Strings()
	if dates == nil {
		dates = []string{}
	}
	return &AvailabilityResponse{BlockedDates: dates}
}

type QuoteResponse struct {
	Nights           int    `json:"nights"`
	NightlyRateCents int64  `json:"nightlyRateCents"`
	SubtotalCents    int64  `json:"subtotalCents"`
	DiscountCents    int64  `json:"discountCents"`
	DiscountApplied  bool   `json:"discountApplied"`
	CleaningFeeCents int64  `json:"cleaningFeeCents"`
	TotalCents       int64  `json:"totalCents"`
	Total            string `json:"total"`
}

func FromQuote(q reservation.PriceQuote) *QuoteResponse {
	return &QuoteResponse{
		Nights:           q.Nights,
		NightlyRateCents: q.NightlyRate.Cents(),
		SubtotalCents:    q.Subtotal.Cents(),
		DiscountCents:    q.Discount.Cents(),
		DiscountApplied:  q.DiscountApplied,
		CleaningFeeCents: q.CleaningFee.Cents(),
		TotalCents:       q.Total.Cents(),
		Total:            q.Total.String(),
	}
}

type SelectionResponse struct {
	CheckIn  *calendar.Date `json:"checkIn"`
	CheckOut *calendar.Date `json:"checkOut"`
	State    string         `json:"state"`
	Nights   int            `json:"nights"`
}

func FromSelectionView(v queries.SelectionView) *SelectionResponse {
	return &SelectionResponse{CheckIn: v.CheckIn, CheckOut: v.CheckOut, State: v.State, Nights: v.Nights}
}

type PickResponse struct {
	Selection *SelectionResponse `json:"selection"`
	Quote     *QuoteResponse     `json:"quote"`
}

type DayResponse struct {
	Date       calendar.Date `json:"date"`
	Class      string        `json:"class"`
	Selectable bool          `json:"selectable"`
}

type CalendarResponse struct {
	Month     string             `json:"month"`
	Today     calendar.Date      `json:"today"`
	Days      []DayResponse      `json:"days"`
	Selection *SelectionResponse `json:"selection"`
	Quote     *QuoteResponse     `json:"quote"`
}

func FromMonthView(v *queries.MonthView) *CalendarResponse {
	days := make([]DayResponse, len(v.Days))
	for i, c := range v.Days {
		days[i] = DayResponse{Date: c.Date, Class: string(c.Class), Selectable: c.Selectable()}
	}
	return &CalendarResponse{
		Month:     calendar.NewDate(v.Year, v.Month, 1).Time().Format("2006-01"),
		Today:     v.Today,
		Days:      days,
		Selection: FromSelectionView(v.Selection),
		Quote:     FromQuote(v.Quote),
	}
}

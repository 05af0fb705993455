package reservation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"bluehaven/internal/domain/user"
)

var (
	ErrGuestNameRequired   = errors.New("guest name is required")
	ErrGuestEmailRequired  = errors.New("guest email is required")
	ErrGuestPhoneRequired  = errors.New("guest phone is required")
	ErrInvalidPartySize    = errors.New("number of guests is outside the property's capacity")
	ErrInvalidCheckInTime  = errors.New("check-in time must be between 14:00 and 20:00 or flexible")
	ErrSpecialRequestsSize = errors.New("special requests exceed maximum length")
	ErrNegativeMoney       = errors.New("money cannot be negative")
)

const (
	DefaultCapacity       = 6
	MaxSpecialRequestsLen = 1000
)

// Money is an amount in ZAR cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromRand(rand float64) (Money, error) {
	if rand < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: int64(math.Round(rand * 100))}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Rand() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent returns pct% of m rounded half away from zero to the cent.
func (m Money) Percent(pct float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * pct / 100.0))}
}

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) String() string {
	return fmt.Sprintf("R%d.%02d", m.cents/100, m.cents%100)
}

type Guest struct {
	name  string
	email user.Email
	phone string
}

func NewGuest(name, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Guest{}, ErrGuestNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return Guest{}, ErrGuestEmailRequired
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return Guest{}, err
	}
	if phone == "" {
		return Guest{}, ErrGuestPhoneRequired
	}
	return Guest{name: name, email: e, phone: phone}, nil
}

func (g Guest) Name() string      { return g.name }
func (g Guest) Email() user.Email { return g.email }
func (g Guest) Phone() string     { return g.phone }

type PartySize struct {
	value int
}

func NewPartySize(n, capacity int) (PartySize, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if n < 1 || n > capacity {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: n}, nil
}

func (p PartySize) Value() int { return p.value }

// CheckInTime is an on-the-hour arrival between 14:00 and 20:00, or "flexible".
type CheckInTime struct {
	value string
}

const (
	DefaultCheckInTime  = "15:00"
	FlexibleCheckInTime = "flexible"
)

var checkInTimes = []string{"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", FlexibleCheckInTime}

func CheckInTimeOptions() []string {
	out := make([]string, len(checkInTimes))
	copy(out, checkInTimes)
	return out
}

func NewCheckInTime(s string) (CheckInTime, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return CheckInTime{value: DefaultCheckInTime}, nil
	}
	for _, opt := range checkInTimes {
		if s == opt {
			return CheckInTime{value: s}, nil
		}
	}
	return CheckInTime{}, ErrInvalidCheckInTime
}

func (c CheckInTime) String() string { return c.value }

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(s string) (SpecialRequests, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxSpecialRequestsLen {
		return SpecialRequests{}, ErrSpecialRequestsSize
	}
	return SpecialRequests{value: s}, nil
}

func (s SpecialRequests) String() string { return s.value }
func (s SpecialRequests) IsEmpty() bool  { return s.value == "" }

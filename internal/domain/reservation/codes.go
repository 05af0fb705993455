package reservation

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	idPrefix               = "BH"
	confirmationCodeLength = 8
	idSuffixLength         = 4
	codeAlphabet           = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator produces reservation identifiers and guest-facing confirmation codes.
type CodeGenerator interface {
	ReservationID(now time.Time) string
	ConfirmationCode() string
}

type RandomCodes struct{}

func NewRandomCodes() *RandomCodes {
	return &RandomCodes{}
}

// ReservationID is "BH" + the base36 millisecond timestamp + a random suffix, uppercase.
func (RandomCodes) ReservationID(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return idPrefix + ts + RandomString(idSuffixLength)
}

func (RandomCodes) ConfirmationCode() string {
	return RandomString(confirmationCodeLength)
}

// RandomString draws n characters from [A-Z0-9].
func RandomString(n int) string {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is unusable
			panic(err)
		}
		b.WriteByte(codeAlphabet[idx.Int64()])
	}
	return b.String()
}

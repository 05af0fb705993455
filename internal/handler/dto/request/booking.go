package request

import (
	"strings"

	"bluehaven/internal/domain/reservation"
	"bluehaven/internal/usecase/commands"
)

type CreateBookingRequest struct {
	CheckIn         string `json:"checkIn" binding:"required,isodate"`
	CheckOut        string `json:"checkOut" binding:"required,isodate"`
	Name            string `json:"name" binding:"required,max=120"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,max=40"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	CheckInTime     string `json:"checkInTime" binding:"omitempty,checkintime"`
	SpecialRequests string `json:"specialRequests" binding:"max=1000"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := optionalDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := optionalDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Name:            strings.TrimSpace(r.Name),
		Email:           strings.TrimSpace(r.Email),
		Phone:           strings.TrimSpace(r.Phone),
		Guests:          r.Guests,
		CheckInTime:     r.CheckInTime,
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
	}, nil
}

type UpdateStatusRequest struct {
	Status        string  `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
	PaymentStatus *string `json:"paymentStatus,omitempty" binding:"omitempty,oneof=pending paid failed refunded"`
}

func (r UpdateStatusRequest) ToDomain() (reservation.Status, *reservation.PaymentStatus, error) {
	status, err := reservation.NewStatus(r.Status)
	if err != nil {
		return "", nil, err
	}
	if r.PaymentStatus == nil {
		return status, nil, nil
	}
	ps, err := reservation.NewPaymentStatus(*r.PaymentStatus)
	if err != nil {
		return "", nil, err
	}
	return status, &ps, nil
}

type ProcessPaymentRequest struct {
	Method string `json:"method" binding:"required,oneof=payfast yoco eft cash"`
}

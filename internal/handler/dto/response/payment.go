package response

import (
	"bluehaven/internal/domain/payment"

	"github.com/jinzhu/copier"
)

type PaymentMethodResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Kind        string  `json:"kind"`
	FeePercent  float64 `json:"feePercent"`
}

type PaymentMethodsResponse struct {
	Currency string                   `json:"currency"`
	Methods  []*PaymentMethodResponse `json:"methods"`
}

func FromMethods(ms []payment.Method) *PaymentMethodsResponse {
	out := &PaymentMethodsResponse{Currency: payment.Currency, Methods: make([]*PaymentMethodResponse, 0, len(ms))}
	for _, m := range ms {
		var r PaymentMethodResponse
		_ = copier.Copy(&r, &m)
		out.Methods = append(out.Methods, &r)
	}
	return out
}

package create_payment_intent

import (
	"github.com/shopspring/decimal"

	"github.com/zumipet/ZMI-BookingService/internal/integrations/stripe"
)

// CreateIntentRequest HTTP request model.
// Сумма принимается в основной валюте (доллары), числом или строкой.
type CreateIntentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency *string         `json:"currency,omitempty"`
}

// CreateIntentResponse HTTP response model
type CreateIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"` // minor units
	Currency        string `json:"currency"`
	Status          string `json:"status"`
}

// FromIntent конвертирует ответ шлюза в HTTP response
func FromIntent(intent *stripe.PaymentIntent) *CreateIntentResponse {
	return &CreateIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Status:          intent.Status,
	}
}

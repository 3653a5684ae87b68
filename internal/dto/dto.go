package dto

import "github.com/jimothydawson/phoebe-fund/internal/model"

type CartItem struct {
	Style     string `json:"style"`
	Size      string `json:"size"`
	StrapType string `json:"strapType,omitempty"`
}

type CheckoutRequest struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Items []CartItem `json:"items"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type SubscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type OrderResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Sex       string  `json:"sex"`
	Size      string  `json:"size"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Date      string  `json:"date"`
	PaymentID string  `json:"paymentId"`
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type FundraisingResponse struct {
	Success bool                       `json:"success"`
	Debug   *model.FundraisingSnapshot `json:"debug"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

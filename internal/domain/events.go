package domain

import "time"

type OrderCreatedEvent struct {
	OrderID   uint64    `json:"orderId"`
	Total     int64     `json:"total"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
}

type PaymentConfirmedEvent struct {
	OrderID   uint64    `json:"orderId"`
	Reference string    `json:"reference"`
	PaidAt    time.Time `json:"paidAt"`
}

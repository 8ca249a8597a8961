package services

import (
	"time"

	"shopfront/internal/domain"
)

func CreateMockItems() []domain.OrderItem {
	return []domain.OrderItem{
		{ProductID: 1, Name: "A", Price: 100, Quantity: 2},
		{ProductID: 2, Name: "B", Price: 50, Quantity: 1},
	}
}

func CreateMockOrder(id uint64, reference string, paymentStatus domain.PaymentStatus) *domain.Order {
	order := &domain.Order{
		ID:        id,
		Items:     CreateMockItems(),
		Total:     domain.TotalOf(CreateMockItems()),
		Status:    "pending",
		CreatedAt: time.Now(),
		Paystack: domain.Payment{
			Reference: reference,
			Status:    paymentStatus,
		},
	}
	if paymentStatus == domain.PaymentPaid {
		now := time.Now()
		order.Paystack.PaidAt = &now
	}
	return order
}

const (
	TestReference = "psk_ref_0001"
	TestAuthURL   = "https://checkout.paystack.com/abc123"
	TestBaseURL   = "http://localhost:4000"
)

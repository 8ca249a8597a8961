package domain

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Order is a checkout snapshot: line items copy product name and price at
// purchase time, so later catalog changes never affect existing orders.
type Order struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total     int64       `json:"total" gorm:"not null"`
	Customer  Customer    `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Paystack  Payment     `json:"paystack" gorm:"embedded;embeddedPrefix:paystack_"`
	Status    string      `json:"status" gorm:"default:'pending'"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}

type OrderItem struct {
	ID        uint64 `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64 `json:"-" gorm:"index"`
	ProductID uint64 `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// Customer is free-text contact info collected at checkout; every field is optional.
type Customer struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	ApproxPickupLocation string `json:"approxPickupLocation"`
}

// Payment is the gateway sub-record on an order.
type Payment struct {
	Reference        string        `json:"reference" gorm:"index"`
	AuthorizationURL string        `json:"authorization_url"`
	Status           PaymentStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
}

// TotalOf sums price*quantity over the given line items.
func TotalOf(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}

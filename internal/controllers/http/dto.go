package http

type OrderItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Price     int64  `json:"price" binding:"min=0"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

type CustomerRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	ApproxPickupLocation string `json:"approxPickupLocation"`
}

type CreateOrderRequest struct {
	Items    []OrderItemRequest `json:"items" binding:"required,dive"`
	Customer CustomerRequest    `json:"customer"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package http

import (
	"errors"
	"net/http"
	"strconv"

	"shopfront/internal/domain"
	"shopfront/internal/infra/paystack"
	"shopfront/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	orders     *services.OrderService
	catalog    *services.CatalogService
	adminToken string
	log        *zap.SugaredLogger
}

func NewHandler(orders *services.OrderService, catalog *services.CatalogService, adminToken string, log *zap.SugaredLogger) *Handler {
	return &Handler{
		orders:     orders,
		catalog:    catalog,
		adminToken: adminToken,
		log:        log,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/products", h.GetProducts)
	r.POST("/api/orders", h.CreateOrder)
	r.POST("/api/paystack/webhook", h.PaystackWebhook)
	r.GET("/api/paystack/verify/:reference", h.VerifyPayment)
	r.GET("/api/orders/reference/:ref", h.GetOrderByReference)
	r.GET("/api/orders", h.ListOrders)
	r.PUT("/api/orders/:id/status", h.UpdateOrderStatus)
	r.GET("/admin", h.AdminOrders)
	r.POST("/api/admin/seed", h.AdminSeed)
}

func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to fetch products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	result, err := h.orders.CreateOrder(c.Request.Context(), items, domain.Customer{
		Name:                 req.Customer.Name,
		Email:                req.Customer.Email,
		Phone:                req.Customer.Phone,
		ApproxPickupLocation: req.Customer.ApproxPickupLocation,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoItems), errors.Is(err, services.ErrInvalidItem):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrPaymentInit):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment initialization failed"})
		default:
			h.log.Errorw("failed to create order", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// PaystackWebhook always acknowledges with 200 {received:true}; reconciliation
// failures are logged, never surfaced to the gateway.
func (h *Handler) PaystackWebhook(c *gin.Context) {
	var event paystack.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		h.log.Warnw("malformed webhook payload", "error", err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.orders.ReconcileWebhook(c.Request.Context(), event); err != nil {
		h.log.Errorw("webhook reconciliation failed", "event", event.Event, "reference", event.Data.Reference, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	result, err := h.orders.VerifyReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.log.Errorw("verification failed", "reference", c.Param("reference"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", result.Raw)
}

func (h *Handler) GetOrderByReference(c *gin.Context) {
	order, err := h.orders.GetOrderByReference(c.Request.Context(), c.Param("ref"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.log.Errorw("failed to fetch order by reference", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to fetch orders", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.log.Errorw("failed to update order status", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, order)
}

package http

import (
	"crypto/subtle"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var adminTemplate = template.Must(template.New("admin").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Admin Orders</title>
<style>
  body { font-family: sans-serif; background: #f4f6f8; color: #1f2937; padding: 24px; }
  h1 { font-size: 28px; margin-bottom: 24px; }
  table { width: 100%; border-collapse: collapse; background: #fff; }
  th { background: #4f46e5; color: #fff; padding: 12px 16px; text-align: left; }
  td { padding: 10px 16px; border-bottom: 1px solid #e5e7eb; vertical-align: top; font-size: 14px; }
  .status-paid { color: #047857; font-weight: 600; }
  .status-pending { color: #b45309; font-weight: 600; }
  .status-failed { color: #b91c1c; font-weight: 600; }
</style>
</head>
<body>
<h1>Admin - Orders</h1>
<table>
<thead>
<tr><th>Order ID</th><th>Customer</th><th>Items</th><th>Total</th><th>Reference</th><th>Payment</th><th>Status</th><th>Created</th></tr>
</thead>
<tbody>
{{range .Orders}}<tr>
  <td>{{.ID}}</td>
  <td>{{.Customer.Name}}<br>{{.Customer.Email}}<br>{{.Customer.Phone}}<br>{{.Customer.ApproxPickupLocation}}</td>
  <td>{{range .Items}}{{.Name}} x{{.Quantity}}<br>{{end}}</td>
  <td>{{.Total}}</td>
  <td>{{.Paystack.Reference}}</td>
  <td><span class="status-{{.Paystack.Status}}">{{.Paystack.Status}}</span></td>
  <td>{{.Status}}</td>
  <td>{{.CreatedAt.Format "2006-01-02 15:04:05"}}</td>
</tr>
{{end}}</tbody>
</table>
</body>
</html>`))

// tokenMatches checks the shared admin secret in constant time.
func (h *Handler) tokenMatches(token string) bool {
	if h.adminToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) == 1
}

// AdminOrders renders the token-guarded HTML orders report. The token comes
// from the X-Godmode header or a token query parameter.
func (h *Handler) AdminOrders(c *gin.Context) {
	token := c.GetHeader("X-Godmode")
	if token == "" {
		token = c.Query("token")
	}
	if !h.tokenMatches(token) {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to fetch orders for admin report", "error", err)
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := adminTemplate.Execute(c.Writer, gin.H{"Orders": orders}); err != nil {
		h.log.Errorw("failed to render admin report", "error", err)
	}
}

// AdminSeed replaces the catalog with the sample products.
func (h *Handler) AdminSeed(c *gin.Context) {
	if !h.tokenMatches(c.GetHeader("X-Godmode")) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	count, err := h.catalog.Reseed(c.Request.Context())
	if err != nil {
		h.log.Errorw("admin reseed failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seeded successfully", "count": count})
}

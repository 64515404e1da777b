package http

import (
	"time"

	"refillstation/internal/core/application/usecases/queries"
	"refillstation/internal/core/domain/model/order"
)

// Error is the JSON body returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	HasContainer bool   `json:"hasContainer"`
	Delivery     bool   `json:"delivery"`
}

// CreateWalkInOrderRequest is the body of POST /api/admin/walkin.
type CreateWalkInOrderRequest struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	HasContainer bool   `json:"hasContainer"`
	Delivery     bool   `json:"delivery"`
}

// UpdateOrderStatusRequest is the body of PUT /api/admin/orders/:id.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// SetWebsiteStatusRequest is the body of PUT /api/admin/website-status.
type SetWebsiteStatusRequest struct {
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID           string    `json:"id"`
	CustomerID   *string   `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	HasContainer bool      `json:"hasContainer"`
	Delivery     bool      `json:"delivery"`
	Price        int       `json:"price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// WebsiteStatusResponse is the JSON representation of the availability gate.
type WebsiteStatusResponse struct {
	Enabled   bool      `json:"enabled"`
	Reason    string    `json:"reason"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MonthlySalesResponse is the JSON body of GET /api/admin/sales/monthly.
type MonthlySalesResponse struct {
	Year       int    `json:"year"`
	Month      string `json:"month"`
	TotalSales int    `json:"totalSales"`
	OrderCount int    `json:"orderCount"`
}

// TopCustomerResponse is one entry of GET /api/admin/customers/top.
type TopCustomerResponse struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	TotalSpent   int    `json:"totalSpent"`
	OrderCount   int    `json:"orderCount"`
}

// orderResponseFromAggregate maps a write-side order aggregate to its JSON form.
func orderResponseFromAggregate(o *order.Order) OrderResponse {
	var customerID *string
	if id := o.CustomerID(); id != nil {
		s := id.String()
		customerID = &s
	}

	return OrderResponse{
		ID:           o.ID().String(),
		CustomerID:   customerID,
		CustomerName: o.CustomerName(),
		Phone:        o.Phone(),
		Address:      o.Address(),
		HasContainer: o.HasContainer(),
		Delivery:     o.Delivery(),
		Price:        o.Price(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

// orderResponseFromReadModel maps a read-side order row to its JSON form.
func orderResponseFromReadModel(row queries.OrderResponse) OrderResponse {
	var customerID *string
	if row.CustomerID != nil {
		s := row.CustomerID.String()
		customerID = &s
	}

	return OrderResponse{
		ID:           row.ID.String(),
		CustomerID:   customerID,
		CustomerName: row.CustomerName,
		Phone:        row.Phone,
		Address:      row.Address,
		HasContainer: row.HasContainer,
		Delivery:     row.Delivery,
		Price:        row.Price,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

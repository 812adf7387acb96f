package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of an order.
//
// Any status may be set from any other status; there is no transition table.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderDateLayout is the calendar-date format used for Order.Date.
const OrderDateLayout = "2006-01-02"

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order groups line items for one client.
//
// TotalAmount is a snapshot computed once, when the order and its line items
// are written, and is never recalculated on read.
type Order struct {
	ID          uint            `json:"id"`
	ClientID    uint            `json:"client_id"`
	Date        time.Time       `json:"date"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []LineItem      `json:"items,omitempty"`

	// Read-only, joined from clients.
	ClientName    string `json:"client_name,omitempty"`
	ClientPhone   string `json:"client_phone,omitempty"`
	ClientAddress string `json:"client_address,omitempty"`
}

// LineItem is one furniture/quantity/price entry of an order. Price is a copy
// taken when the order was placed, not a reference to the current furniture price.
type LineItem struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"order_id"`
	FurnitureID uint            `json:"furniture_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`

	// Read-only, joined from furniture. Empty when the furniture was deleted.
	FurnitureName string `json:"furniture_name,omitempty"`
	FurnitureType string `json:"furniture_type,omitempty"`
}

// Subtotal is price × quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

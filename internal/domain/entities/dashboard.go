package entities

import "github.com/shopspring/decimal"

// ClientSpending is the amount a client spent across all of its orders.
type ClientSpending struct {
	ClientID   uint            `json:"client_id"`
	ClientName string          `json:"client_name"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// DashboardStats aggregates warehouse figures for the dashboard view.
type DashboardStats struct {
	Suppliers       int64
	Clients         int64
	Furniture       int64
	Orders          int64
	InventoryValue  decimal.Decimal
	PendingOrders   int64
	CompletedOrders int64
	CancelledOrders int64
	TotalOrderValue decimal.Decimal
	LowStockItems   int64
	OutOfStockItems int64
	TopClients      []ClientSpending
	RecentOrders    []Order
}

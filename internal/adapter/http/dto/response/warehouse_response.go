package response

import (
	"time"

	"furniture_warehouse/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// money renders a monetary amount as a JSON number with two decimals.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

type MessageResponse struct {
	Message string `json:"message" example:"deleted successfully"`
}

type SupplierResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Contacts  string    `json:"contacts"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSupplier(s entities.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, Contacts: s.Contacts, Address: s.Address, CreatedAt: s.CreatedAt}
}

func FromSuppliers(in []entities.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromSupplier(s))
	}
	return out
}

type ClientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Address: c.Address, CreatedAt: c.CreatedAt}
}

func FromClients(in []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromClient(c))
	}
	return out
}

type FurnitureResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	SupplierID   *uint     `json:"supplier_id"`
	SupplierName string    `json:"supplier_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromFurniture(f entities.Furniture) FurnitureResponse {
	return FurnitureResponse{
		ID:           f.ID,
		Name:         f.Name,
		Type:         f.Type,
		Price:        money(f.Price),
		Quantity:     f.Quantity,
		SupplierID:   f.SupplierID,
		SupplierName: f.SupplierName,
		CreatedAt:    f.CreatedAt,
	}
}

func FromFurnitureList(in []entities.Furniture) []FurnitureResponse {
	out := make([]FurnitureResponse, 0, len(in))
	for _, f := range in {
		out = append(out, FromFurniture(f))
	}
	return out
}

type LineItemResponse struct {
	ID            uint    `json:"id"`
	OrderID       uint    `json:"order_id"`
	FurnitureID   uint    `json:"furniture_id"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	FurnitureName string  `json:"furniture_name"`
	FurnitureType string  `json:"furniture_type"`
}

type OrderResponse struct {
	ID            uint               `json:"id"`
	ClientID      uint               `json:"client_id"`
	Date          string             `json:"date" example:"2024-05-01"`
	Status        string             `json:"status" example:"pending"`
	TotalAmount   float64            `json:"total_amount"`
	CreatedAt     time.Time          `json:"created_at"`
	ClientName    string             `json:"client_name,omitempty"`
	ClientPhone   string             `json:"client_phone,omitempty"`
	ClientAddress string             `json:"client_address,omitempty"`
	Items         []LineItemResponse `json:"items,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:            o.ID,
		ClientID:      o.ClientID,
		Date:          o.Date.Format(entities.OrderDateLayout),
		Status:        string(o.Status),
		TotalAmount:   money(o.TotalAmount),
		CreatedAt:     o.CreatedAt,
		ClientName:    o.ClientName,
		ClientPhone:   o.ClientPhone,
		ClientAddress: o.ClientAddress,
	}
	if len(o.Items) > 0 {
		res.Items = make([]LineItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			res.Items = append(res.Items, LineItemResponse{
				ID:            it.ID,
				OrderID:       it.OrderID,
				FurnitureID:   it.FurnitureID,
				Quantity:      it.Quantity,
				Price:         money(it.Price),
				FurnitureName: it.FurnitureName,
				FurnitureType: it.FurnitureType,
			})
		}
	}
	return res
}

// FromOrders renders list rows; line items are only returned by the single
// order endpoint.
func FromOrders(in []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(in))
	for _, o := range in {
		res := FromOrder(o)
		res.Items = nil
		out = append(out, res)
	}
	return out
}

type ClientSpendingResponse struct {
	ClientID   uint    `json:"client_id"`
	ClientName string  `json:"client_name"`
	TotalSpent float64 `json:"total_spent"`
}

type DashboardResponse struct {
	Suppliers       int64                    `json:"suppliers"`
	Clients         int64                    `json:"clients"`
	Furniture       int64                    `json:"furniture"`
	Orders          int64                    `json:"orders"`
	InventoryValue  float64                  `json:"inventory_value"`
	PendingOrders   int64                    `json:"pending_orders"`
	CompletedOrders int64                    `json:"completed_orders"`
	CancelledOrders int64                    `json:"cancelled_orders"`
	TotalOrderValue float64                  `json:"total_order_value"`
	LowStockItems   int64                    `json:"low_stock_items"`
	OutOfStockItems int64                    `json:"out_of_stock_items"`
	TopClients      []ClientSpendingResponse `json:"top_clients"`
	RecentOrders    []OrderResponse          `json:"recent_orders"`
}

func FromDashboard(s entities.DashboardStats) DashboardResponse {
	top := make([]ClientSpendingResponse, 0, len(s.TopClients))
	for _, c := range s.TopClients {
		top = append(top, ClientSpendingResponse{ClientID: c.ClientID, ClientName: c.ClientName, TotalSpent: money(c.TotalSpent)})
	}
	return DashboardResponse{
		Suppliers:       s.Suppliers,
		Clients:         s.Clients,
		Furniture:       s.Furniture,
		Orders:          s.Orders,
		InventoryValue:  money(s.InventoryValue),
		PendingOrders:   s.PendingOrders,
		CompletedOrders: s.CompletedOrders,
		CancelledOrders: s.CancelledOrders,
		TotalOrderValue: money(s.TotalOrderValue),
		LowStockItems:   s.LowStockItems,
		OutOfStockItems: s.OutOfStockItems,
		TopClients:      top,
		RecentOrders:    FromOrders(s.RecentOrders),
	}
}

type AuditEventResponse struct {
	ID        string    `json:"id"`
	Entity    string    `json:"entity"`
	EntityID  uint      `json:"entity_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAuditEvents(in []entities.AuditEvent) []AuditEventResponse {
	out := make([]AuditEventResponse, 0, len(in))
	for _, e := range in {
		out = append(out, AuditEventResponse{
			ID:        e.ID,
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			Action:    string(e.Action),
			Detail:    e.Detail,
			Actor:     e.Actor,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

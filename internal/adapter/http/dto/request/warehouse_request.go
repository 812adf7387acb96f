package request

import (
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase"

	"github.com/shopspring/decimal"
)

type SupplierRequest struct {
	Name     string `json:"name" example:"Oak Works"`
	Contacts string `json:"contacts" example:"sales@oakworks.com"`
	Address  string `json:"address" example:"12 Mill Road"`
}

func (r SupplierRequest) ToEntity() entities.Supplier {
	return entities.Supplier{Name: r.Name, Contacts: r.Contacts, Address: r.Address}
}

type ClientRequest struct {
	Name    string `json:"name" example:"Alice"`
	Phone   string `json:"phone" example:"555-0101"`
	Address string `json:"address" example:"1 Main St"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{Name: r.Name, Phone: r.Phone, Address: r.Address}
}

// FurnitureRequest accepts price as a JSON number or a decimal string.
type FurnitureRequest struct {
	Name       string           `json:"name" example:"Chair"`
	Type       string           `json:"type" example:"chair"`
	Price      *decimal.Decimal `json:"price" swaggertype:"number" example:"100.50"`
	Quantity   *int             `json:"quantity" example:"10"`
	SupplierID *uint            `json:"supplier_id" example:"1"`
}

func (r FurnitureRequest) ToInput() usecase.FurnitureInput {
	return usecase.FurnitureInput{
		Name:       r.Name,
		Type:       r.Type,
		Price:      r.Price,
		Quantity:   r.Quantity,
		SupplierID: r.SupplierID,
	}
}

type QuantityRequest struct {
	Quantity *int `json:"quantity" example:"5"`
}

type OrderItemRequest struct {
	FurnitureID uint             `json:"furniture_id" example:"1"`
	Quantity    int              `json:"quantity" example:"3"`
	Price       *decimal.Decimal `json:"price" swaggertype:"number" example:"100"`
}

type CreateOrderRequest struct {
	ClientID uint               `json:"client_id" example:"1"`
	Date     string             `json:"date" example:"2024-05-01"`
	Status   string             `json:"status" example:"pending"`
	Items    []OrderItemRequest `json:"items"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	items := make([]usecase.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.OrderItemInput{FurnitureID: it.FurnitureID, Quantity: it.Quantity, Price: it.Price})
	}
	return usecase.CreateOrderInput{ClientID: r.ClientID, Date: r.Date, Status: r.Status, Items: items}
}

type OrderStatusRequest struct {
	Status string `json:"status" example:"completed"`
}

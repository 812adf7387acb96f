package interfaces

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
)

// IOrderRepository abstracts relational persistence for Order and its line items.
//
// CreateWithItems writes the order, every line item and the derived total in one
// transaction; on any failure nothing is persisted. It fails with ErrMissingClient
// or ErrMissingFurniture when a reference does not resolve.
//
// DeleteWithItems removes the line items and the order in one transaction and
// returns false (having rolled back) when the order did not exist.
type IOrderRepository interface {
	CreateWithItems(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id uint) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id uint, status entities.OrderStatus) (bool, error)
	DeleteWithItems(ctx context.Context, id uint) (bool, error)
}

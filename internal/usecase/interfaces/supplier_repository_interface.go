package interfaces

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
)

// ISupplierRepository abstracts relational persistence for Supplier.
//
// Lookups return a zero Supplier (ID == 0) when the row does not exist;
// Update returns a zero Supplier and Delete returns false when no row was affected.
type ISupplierRepository interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id uint) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
	Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

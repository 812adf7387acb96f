package interfaces

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
)

// IFurnitureRepository abstracts relational persistence for Furniture.
//
// Create and Update fail with ErrMissingSupplier when SupplierID points to no row.
type IFurnitureRepository interface {
	Create(ctx context.Context, f entities.Furniture) (entities.Furniture, error)
	GetByID(ctx context.Context, id uint) (entities.Furniture, error)
	List(ctx context.Context) ([]entities.Furniture, error)
	Update(ctx context.Context, f entities.Furniture) (entities.Furniture, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

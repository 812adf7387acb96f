package interfaces

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
)

// IClientRepository abstracts relational persistence for Client.
// Not-found conventions match ISupplierRepository.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id uint) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

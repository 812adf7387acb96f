package usecase

import (
	"context"
	"errors"
	"fmt"
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// FurnitureInput carries the writable furniture fields. Pointers distinguish
// "absent" from zero: a price of 0 is valid, a missing price is not.
type FurnitureInput struct {
	Name       string
	Type       string
	Price      *decimal.Decimal
	Quantity   *int
	SupplierID *uint
}

// IFurnitureUseCase exposes stock item CRUD plus the standalone quantity update.
type IFurnitureUseCase interface {
	Create(ctx context.Context, in FurnitureInput) (entities.Furniture, error)
	GetByID(ctx context.Context, id uint) (entities.Furniture, error)
	List(ctx context.Context) ([]entities.Furniture, error)
	Update(ctx context.Context, id uint, in FurnitureInput) (entities.Furniture, error)
	UpdateQuantity(ctx context.Context, id uint, quantity *int) error
	Delete(ctx context.Context, id uint) error
}

type FurnitureUseCase struct {
	repo  interfaces.IFurnitureRepository
	audit interfaces.IAuditLogRepository
}

var _ IFurnitureUseCase = (*FurnitureUseCase)(nil)

func NewFurnitureUseCase(repo interfaces.IFurnitureRepository, audit interfaces.IAuditLogRepository) *FurnitureUseCase {
	return &FurnitureUseCase{repo: repo, audit: audit}
}

func (u *FurnitureUseCase) Create(ctx context.Context, in FurnitureInput) (entities.Furniture, error) {
	f, err := buildFurniture(in)
	if err != nil {
		return entities.Furniture{}, err
	}

	created, err := u.repo.Create(ctx, f)
	if err != nil {
		if errors.Is(err, interfaces.ErrMissingSupplier) {
			return entities.Furniture{}, ErrFurnitureSupplierMissing
		}
		log.Printf("[furniture][usecase] create failed err=%v", err)
		return entities.Furniture{}, err
	}
	if created.ID == 0 {
		log.Printf("[furniture][usecase] create read back no row name=%s", f.Name)
		return entities.Furniture{}, ErrFurnitureReadBack
	}
	return created, nil
}

func (u *FurnitureUseCase) GetByID(ctx context.Context, id uint) (entities.Furniture, error) {
	if id == 0 {
		return entities.Furniture{}, ErrInvalidID
	}
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Furniture{}, err
	}
	if f.ID == 0 {
		return entities.Furniture{}, ErrFurnitureNotFound
	}
	return f, nil
}

func (u *FurnitureUseCase) List(ctx context.Context) ([]entities.Furniture, error) {
	return u.repo.List(ctx)
}

func (u *FurnitureUseCase) Update(ctx context.Context, id uint, in FurnitureInput) (entities.Furniture, error) {
	if id == 0 {
		return entities.Furniture{}, ErrInvalidID
	}
	// A full update rewrites every column, so stock must be stated explicitly.
	if in.Quantity == nil {
		return entities.Furniture{}, ErrFurnitureQuantityRequired
	}
	f, err := buildFurniture(in)
	if err != nil {
		return entities.Furniture{}, err
	}
	f.ID = id

	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		if errors.Is(err, interfaces.ErrMissingSupplier) {
			return entities.Furniture{}, ErrFurnitureSupplierMissing
		}
		return entities.Furniture{}, err
	}
	if updated.ID == 0 {
		return entities.Furniture{}, ErrFurnitureNotFound
	}
	return updated, nil
}

// UpdateQuantity sets the stock level of one item. A nil or negative quantity
// is rejected before the store is touched.
func (u *FurnitureUseCase) UpdateQuantity(ctx context.Context, id uint, quantity *int) error {
	if id == 0 {
		return ErrInvalidID
	}
	if quantity == nil || *quantity < 0 {
		return ErrFurnitureNegativeQuantity
	}

	found, err := u.repo.UpdateQuantity(ctx, id, *quantity)
	if err != nil {
		return err
	}
	if !found {
		return ErrFurnitureNotFound
	}

	recordAudit(ctx, u.audit, "furniture", id, entities.AuditActionQuantityChange, fmt.Sprintf("quantity=%d", *quantity))
	return nil
}

func (u *FurnitureUseCase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrFurnitureNotFound
	}
	return nil
}

func buildFurniture(in FurnitureInput) (entities.Furniture, error) {
	name := strings.TrimSpace(in.Name)
	kind := strings.TrimSpace(in.Type)
	if name == "" || kind == "" || in.Price == nil {
		return entities.Furniture{}, ErrFurnitureFieldsRequired
	}
	if in.Price.IsNegative() {
		return entities.Furniture{}, ErrFurnitureNegativePrice
	}

	quantity := 0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 0 {
		return entities.Furniture{}, ErrFurnitureNegativeQuantity
	}

	var supplierID *uint
	if in.SupplierID != nil && *in.SupplierID != 0 {
		id := *in.SupplierID
		supplierID = &id
	}

	return entities.Furniture{
		Name:       name,
		Type:       kind,
		Price:      in.Price.Round(2),
		Quantity:   quantity,
		SupplierID: supplierID,
	}, nil
}

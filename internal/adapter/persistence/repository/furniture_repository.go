package repository

import (
	"context"
	"fmt"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const furnitureWithSupplier = "furniture.*, suppliers.name AS supplier_name"

// FurnitureRepository persists stock items. Reads join the supplier name.
type FurnitureRepository struct {
	db *gorm.DB
}

var _ interfaces.IFurnitureRepository = (*FurnitureRepository)(nil)

func NewFurnitureRepository(db *gorm.DB) *FurnitureRepository {
	return &FurnitureRepository{db: db}
}

func (r *FurnitureRepository) view(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("furniture").
		Select(furnitureWithSupplier).
		Joins("LEFT JOIN suppliers ON suppliers.id = furniture.supplier_id")
}

func (r *FurnitureRepository) Create(ctx context.Context, f entities.Furniture) (entities.Furniture, error) {
	row := toFurnitureRow(f)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkSupplier(tx, f.SupplierID); err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return entities.Furniture{}, fmt.Errorf("insert furniture: %w", err)
	}
	return r.GetByID(ctx, row.ID)
}

func (r *FurnitureRepository) GetByID(ctx context.Context, id uint) (entities.Furniture, error) {
	var rows []furnitureView
	if err := r.view(ctx).Where("furniture.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return entities.Furniture{}, fmt.Errorf("get furniture: %w", err)
	}
	if len(rows) == 0 {
		return entities.Furniture{}, nil
	}
	return fromFurnitureView(rows[0]), nil
}

func (r *FurnitureRepository) List(ctx context.Context) ([]entities.Furniture, error) {
	var rows []furnitureView
	if err := r.view(ctx).Scopes(newestFirst("furniture")).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list furniture: %w", err)
	}
	out := make([]entities.Furniture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromFurnitureView(row))
	}
	return out, nil
}

func (r *FurnitureRepository) Update(ctx context.Context, f entities.Furniture) (entities.Furniture, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkSupplier(tx, f.SupplierID); err != nil {
			return err
		}
		res := tx.Model(&furnitureRow{}).Where("id = ?", f.ID).Updates(map[string]any{
			"name":        f.Name,
			"type":        f.Type,
			"price":       f.Price,
			"quantity":    f.Quantity,
			"supplier_id": f.SupplierID,
		})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return entities.Furniture{}, fmt.Errorf("update furniture: %w", err)
	}
	if affected == 0 {
		return entities.Furniture{}, nil
	}
	return r.GetByID(ctx, f.ID)
}

func (r *FurnitureRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&furnitureRow{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return false, fmt.Errorf("update furniture quantity: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the item only. Line items that reference it keep their price
// snapshot and read back without a furniture name.
func (r *FurnitureRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&furnitureRow{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete furniture: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func checkSupplier(tx *gorm.DB, supplierID *uint) error {
	if supplierID == nil {
		return nil
	}
	ok, err := rowExists(tx, "suppliers", *supplierID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("supplier_id=%d: %w", *supplierID, interfaces.ErrMissingSupplier)
	}
	return nil
}

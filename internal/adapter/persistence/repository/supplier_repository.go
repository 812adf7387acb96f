package repository

import (
	"context"
	"fmt"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// SupplierRepository persists suppliers in the relational store.
type SupplierRepository struct {
	db *gorm.DB
}

var _ interfaces.ISupplierRepository = (*SupplierRepository)(nil)

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	row := toSupplierRow(s)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Supplier{}, fmt.Errorf("insert supplier: %w", err)
	}
	return fromSupplierRow(row), nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id uint) (entities.Supplier, error) {
	var row supplierRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if isNotFound(err) {
		return entities.Supplier{}, nil
	}
	if err != nil {
		return entities.Supplier{}, fmt.Errorf("get supplier: %w", err)
	}
	return fromSupplierRow(row), nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	var rows []supplierRow
	if err := r.db.WithContext(ctx).Scopes(newestFirst("suppliers")).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	out := make([]entities.Supplier, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromSupplierRow(row))
	}
	return out, nil
}

func (r *SupplierRepository) Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	res := r.db.WithContext(ctx).Model(&supplierRow{}).Where("id = ?", s.ID).Updates(map[string]any{
		"name":     s.Name,
		"contacts": s.Contacts,
		"address":  s.Address,
	})
	if res.Error != nil {
		return entities.Supplier{}, fmt.Errorf("update supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Supplier{}, nil
	}
	return r.GetByID(ctx, s.ID)
}

func (r *SupplierRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&supplierRow{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete supplier: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

package repository

import (
	"context"
	"fmt"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ClientRepository persists clients in the relational store.
type ClientRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	row := toClientRow(c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Client{}, fmt.Errorf("insert client: %w", err)
	}
	return fromClientRow(row), nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint) (entities.Client, error) {
	var row clientRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if isNotFound(err) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, fmt.Errorf("get client: %w", err)
	}
	return fromClientRow(row), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]entities.Client, error) {
	var rows []clientRow
	if err := r.db.WithContext(ctx).Scopes(newestFirst("clients")).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	out := make([]entities.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromClientRow(row))
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	res := r.db.WithContext(ctx).Model(&clientRow{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":    c.Name,
		"phone":   c.Phone,
		"address": c.Address,
	})
	if res.Error != nil {
		return entities.Client{}, fmt.Errorf("update client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Client{}, nil
	}
	return r.GetByID(ctx, c.ID)
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&clientRow{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete client: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	orderWithClient = "orders.*, clients.name AS client_name, clients.phone AS client_phone, clients.address AS client_address"
	itemWithProduct = "order_items.*, furniture.name AS furniture_name, furniture.type AS furniture_type"
)

// errOrderVanished aborts the delete transaction when the order row is gone.
var errOrderVanished = errors.New("order row not found")

// OrderRepository persists orders together with their line items.
type OrderRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithItems inserts the order with a zero total, inserts every line item,
// then writes the accumulated total. Any failure rolls the whole unit back.
func (r *OrderRepository) CreateWithItems(ctx context.Context, o entities.Order) (entities.Order, error) {
	var orderID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := rowExists(tx, "clients", o.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("client_id=%d: %w", o.ClientID, interfaces.ErrMissingClient)
		}

		row := orderRow{
			ClientID:    o.ClientID,
			Date:        o.Date,
			Status:      string(o.Status),
			TotalAmount: decimal.Zero,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, it := range o.Items {
			ok, err := rowExists(tx, "furniture", it.FurnitureID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("furniture_id=%d: %w", it.FurnitureID, interfaces.ErrMissingFurniture)
			}
			item := lineItemRow{
				OrderID:     row.ID,
				FurnitureID: it.FurnitureID,
				Quantity:    it.Quantity,
				Price:       it.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			total = total.Add(it.Subtotal())
		}

		if err := tx.Model(&orderRow{}).Where("id = ?", row.ID).Update("total_amount", total).Error; err != nil {
			return err
		}
		orderID = row.ID
		return nil
	})
	if err != nil {
		log.Printf("[order][repository] create rolled back client_id=%d err=%v", o.ClientID, err)
		return entities.Order{}, fmt.Errorf("create order: %w", err)
	}
	return r.GetByID(ctx, orderID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (entities.Order, error) {
	var rows []orderView
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(orderWithClient).
		Joins("LEFT JOIN clients ON clients.id = orders.client_id").
		Where("orders.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return entities.Order{}, fmt.Errorf("get order: %w", err)
	}
	if len(rows) == 0 {
		return entities.Order{}, nil
	}

	var items []lineItemView
	err = r.db.WithContext(ctx).
		Table("order_items").
		Select(itemWithProduct).
		Joins("LEFT JOIN furniture ON furniture.id = order_items.furniture_id").
		Where("order_items.order_id = ?", id).
		Order("order_items.id ASC").
		Scan(&items).Error
	if err != nil {
		return entities.Order{}, fmt.Errorf("get order items: %w", err)
	}

	o := fromOrderView(rows[0])
	o.Items = make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		o.Items = append(o.Items, fromLineItemView(it))
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]entities.Order, error) {
	var rows []orderView
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(orderWithClient).
		Joins("LEFT JOIN clients ON clients.id = orders.client_id").
		Scopes(newestFirst("orders")).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromOrderView(row))
	}
	return out, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status entities.OrderStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&orderRow{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return false, fmt.Errorf("update order status: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteWithItems removes the line items, then the order. When the order does
// not exist the transaction is rolled back and false is returned.
func (r *OrderRepository) DeleteWithItems(ctx context.Context, id uint) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&lineItemRow{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&orderRow{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errOrderVanished
		}
		return nil
	})
	if errors.Is(err, errOrderVanished) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return true, nil
}

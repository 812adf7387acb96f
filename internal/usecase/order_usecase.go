package usecase

import (
	"context"
	"errors"
	"fmt"
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line item. Price is the unit price agreed for
// this order and is stored as a snapshot.
type OrderItemInput struct {
	FurnitureID uint
	Quantity    int
	Price       *decimal.Decimal
}

type CreateOrderInput struct {
	ClientID uint
	Date     string
	Status   string
	Items    []OrderItemInput
}

// IOrderUseCase exposes order operations.
//
//   - Create writes the order, its line items and the derived total atomically.
//   - UpdateStatus allows any status to replace any other.
//   - Delete removes the order together with its line items.
type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id uint) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type OrderUseCase struct {
	repo  interfaces.IOrderRepository
	audit interfaces.IAuditLogRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, audit interfaces.IAuditLogRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, audit: audit}
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	log.Printf("[order][usecase] create start client_id=%d items=%d", in.ClientID, len(in.Items))

	order, err := buildOrder(in)
	if err != nil {
		log.Printf("[order][usecase] create rejected client_id=%d err=%v", in.ClientID, err)
		return entities.Order{}, err
	}

	created, err := u.repo.CreateWithItems(ctx, order)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrMissingClient):
			return entities.Order{}, ErrOrderClientMissing
		case errors.Is(err, interfaces.ErrMissingFurniture):
			return entities.Order{}, ErrOrderFurnitureMissing
		}
		log.Printf("[order][usecase] create failed client_id=%d err=%v", in.ClientID, err)
		return entities.Order{}, err
	}
	if created.ID == 0 {
		log.Printf("[order][usecase] create read back no row client_id=%d", in.ClientID)
		return entities.Order{}, ErrOrderReadBack
	}
	log.Printf("[order][usecase] create success order_id=%d total=%s", created.ID, created.TotalAmount.StringFixed(2))

	recordAudit(ctx, u.audit, "order", created.ID, entities.AuditActionCreate,
		fmt.Sprintf("client_id=%d items=%d total=%s", created.ClientID, len(created.Items), created.TotalAmount.StringFixed(2)))
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id uint) (entities.Order, error) {
	if id == 0 {
		return entities.Order{}, ErrInvalidID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id uint, status string) error {
	if id == 0 {
		return ErrInvalidID
	}
	s := entities.OrderStatus(strings.TrimSpace(status))
	if s == "" {
		return ErrOrderStatusRequired
	}
	if !s.IsValid() {
		return ErrOrderInvalidStatus
	}

	found, err := u.repo.UpdateStatus(ctx, id, s)
	if err != nil {
		return err
	}
	if !found {
		return ErrOrderNotFound
	}

	recordAudit(ctx, u.audit, "order", id, entities.AuditActionStatusChange, "status="+string(s))
	return nil
}

func (u *OrderUseCase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	found, err := u.repo.DeleteWithItems(ctx, id)
	if err != nil {
		log.Printf("[order][usecase] delete failed order_id=%d err=%v", id, err)
		return err
	}
	if !found {
		return ErrOrderNotFound
	}

	recordAudit(ctx, u.audit, "order", id, entities.AuditActionDelete, "")
	return nil
}

// buildOrder validates the request before any write. The total is left at zero:
// the repository accumulates it from the rows it actually inserts.
func buildOrder(in CreateOrderInput) (entities.Order, error) {
	date := strings.TrimSpace(in.Date)
	if in.ClientID == 0 || date == "" || len(in.Items) == 0 {
		return entities.Order{}, ErrOrderFieldsRequired
	}

	day, err := ParseOrderDate(date)
	if err != nil {
		return entities.Order{}, ErrOrderInvalidDate
	}

	status := entities.OrderStatusPending
	if s := strings.TrimSpace(in.Status); s != "" {
		status = entities.OrderStatus(s)
		if !status.IsValid() {
			return entities.Order{}, ErrOrderInvalidStatus
		}
	}

	items := make([]entities.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.FurnitureID == 0 || it.Quantity <= 0 || it.Price == nil || it.Price.IsNegative() {
			return entities.Order{}, ErrOrderInvalidItem
		}
		items = append(items, entities.LineItem{
			FurnitureID: it.FurnitureID,
			Quantity:    it.Quantity,
			Price:       it.Price.Round(2),
		})
	}

	return entities.Order{
		ClientID:    in.ClientID,
		Date:        day,
		Status:      status,
		TotalAmount: decimal.Zero,
		Items:       items,
	}, nil
}

// ParseOrderDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar day in UTC.
func ParseOrderDate(s string) (time.Time, error) {
	if d, err := time.Parse(entities.OrderDateLayout, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

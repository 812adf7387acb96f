package repository

import (
	"time"

	"furniture_warehouse/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Row types mirror the tables one to one. They carry no associations: every
// reference is checked explicitly by the repositories.

type supplierRow struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Contacts  string `gorm:"size:255"`
	Address   string `gorm:"size:500"`
	CreatedAt time.Time
}

func (supplierRow) TableName() string { return "suppliers" }

type clientRow struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"size:500"`
	CreatedAt time.Time
}

func (clientRow) TableName() string { return "clients" }

type furnitureRow struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"size:255;not null"`
	Type       string          `gorm:"size:100;not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity   int             `gorm:"not null;default:0"`
	SupplierID *uint           `gorm:"index"`
	CreatedAt  time.Time
}

func (furnitureRow) TableName() string { return "furniture" }

type orderRow struct {
	ID          uint            `gorm:"primaryKey"`
	ClientID    uint            `gorm:"not null;index"`
	Date        time.Time       `gorm:"type:date;not null"`
	Status      string          `gorm:"size:20;not null;default:pending"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	CreatedAt   time.Time
}

func (orderRow) TableName() string { return "orders" }

type lineItemRow struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;index"`
	FurnitureID uint            `gorm:"not null;index"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (lineItemRow) TableName() string { return "order_items" }

type userRow struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;not null;uniqueIndex"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"column:password;size:255;not null"`
	FullName     string `gorm:"size:255"`
	Role         string `gorm:"size:20;not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

type auditEventRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Entity    string    `gorm:"size:50;not null"`
	EntityID  uint      `gorm:"not null"`
	Action    string    `gorm:"size:30;not null"`
	Detail    string    `gorm:"size:500"`
	Actor     string    `gorm:"size:100"`
	CreatedAt time.Time `gorm:"index"`
}

func (auditEventRow) TableName() string { return "audit_events" }

// AutoMigrate creates the tables and indexes that do not exist yet. Existing
// tables are left untouched apart from missing columns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&supplierRow{},
		&clientRow{},
		&furnitureRow{},
		&orderRow{},
		&lineItemRow{},
		&userRow{},
		&auditEventRow{},
	)
}

func toSupplierRow(s entities.Supplier) supplierRow {
	return supplierRow{ID: s.ID, Name: s.Name, Contacts: s.Contacts, Address: s.Address, CreatedAt: s.CreatedAt}
}

func fromSupplierRow(r supplierRow) entities.Supplier {
	return entities.Supplier{ID: r.ID, Name: r.Name, Contacts: r.Contacts, Address: r.Address, CreatedAt: r.CreatedAt}
}

func toClientRow(c entities.Client) clientRow {
	return clientRow{ID: c.ID, Name: c.Name, Phone: c.Phone, Address: c.Address, CreatedAt: c.CreatedAt}
}

func fromClientRow(r clientRow) entities.Client {
	return entities.Client{ID: r.ID, Name: r.Name, Phone: r.Phone, Address: r.Address, CreatedAt: r.CreatedAt}
}

func toFurnitureRow(f entities.Furniture) furnitureRow {
	return furnitureRow{
		ID:         f.ID,
		Name:       f.Name,
		Type:       f.Type,
		Price:      f.Price,
		Quantity:   f.Quantity,
		SupplierID: f.SupplierID,
		CreatedAt:  f.CreatedAt,
	}
}

// furnitureView is a furniture row joined with its supplier name.
type furnitureView struct {
	Row          furnitureRow `gorm:"embedded"`
	SupplierName *string
}

func fromFurnitureView(v furnitureView) entities.Furniture {
	return entities.Furniture{
		ID:           v.Row.ID,
		Name:         v.Row.Name,
		Type:         v.Row.Type,
		Price:        v.Row.Price,
		Quantity:     v.Row.Quantity,
		SupplierID:   v.Row.SupplierID,
		CreatedAt:    v.Row.CreatedAt,
		SupplierName: deref(v.SupplierName),
	}
}

// orderView is an order row joined with its client.
type orderView struct {
	Row           orderRow `gorm:"embedded"`
	ClientName    *string
	ClientPhone   *string
	ClientAddress *string
}

func fromOrderView(v orderView) entities.Order {
	return entities.Order{
		ID:            v.Row.ID,
		ClientID:      v.Row.ClientID,
		Date:          v.Row.Date.UTC(),
		Status:        entities.OrderStatus(v.Row.Status),
		TotalAmount:   v.Row.TotalAmount,
		CreatedAt:     v.Row.CreatedAt,
		ClientName:    deref(v.ClientName),
		ClientPhone:   deref(v.ClientPhone),
		ClientAddress: deref(v.ClientAddress),
	}
}

// lineItemView is a line item joined with the furniture it references. The
// furniture columns are empty when the item was orphaned by a furniture delete.
type lineItemView struct {
	Row           lineItemRow `gorm:"embedded"`
	FurnitureName *string
	FurnitureType *string
}

func fromLineItemView(v lineItemView) entities.LineItem {
	return entities.LineItem{
		ID:            v.Row.ID,
		OrderID:       v.Row.OrderID,
		FurnitureID:   v.Row.FurnitureID,
		Quantity:      v.Row.Quantity,
		Price:         v.Row.Price,
		FurnitureName: deref(v.FurnitureName),
		FurnitureType: deref(v.FurnitureType),
	}
}

func fromUserRow(r userRow) entities.User {
	return entities.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FullName:     r.FullName,
		Role:         entities.Role(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toAuditEventRow(e entities.AuditEvent) auditEventRow {
	return auditEventRow{
		ID:        e.ID,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Action:    string(e.Action),
		Detail:    e.Detail,
		Actor:     e.Actor,
		CreatedAt: e.CreatedAt,
	}
}

func fromAuditEventRow(r auditEventRow) entities.AuditEvent {
	return entities.AuditEvent{
		ID:        r.ID,
		Entity:    r.Entity,
		EntityID:  r.EntityID,
		Action:    entities.AuditAction(r.Action),
		Detail:    r.Detail,
		Actor:     r.Actor,
		CreatedAt: r.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the highest positive quantity still reported as low stock.
const LowStockThreshold = 5

// Furniture is a stock item.
//
// Quantity is managed independently from orders: creating an order never
// debits stock.
type Furniture struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	SupplierID *uint           `json:"supplier_id"`
	CreatedAt  time.Time       `json:"created_at"`

	// Read-only, joined from suppliers.
	SupplierName string `json:"supplier_name,omitempty"`
}

// StockValue is price × quantity.
func (f Furniture) StockValue() decimal.Decimal {
	return f.Price.Mul(decimal.NewFromInt(int64(f.Quantity)))
}

func (f Furniture) IsOutOfStock() bool { return f.Quantity == 0 }

func (f Furniture) IsLowStock() bool {
	return f.Quantity > 0 && f.Quantity <= LowStockThreshold
}

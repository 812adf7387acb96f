package entities

import "time"

// Supplier provides furniture to the warehouse.
type Supplier struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Contacts  string    `json:"contacts"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

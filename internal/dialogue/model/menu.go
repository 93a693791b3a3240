package model

import (
	"fmt"
	"time"
)

// MenuItem is one orderable item from the caller's menu snapshot. The engine
// never stores menu items beyond a single Handle call.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"item"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Ingredients string  `json:"ingredients,omitempty"`
}

// Validate rejects records missing the fields the engine relies on.
func (m MenuItem) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("menu item %q: missing id", m.Name)
	}
	if m.Name == "" {
		return fmt.Errorf("menu item %d: missing name", m.ID)
	}
	if m.Price <= 0 {
		return fmt.Errorf("menu item %q: missing price", m.Name)
	}
	return nil
}

// OrderStatus is the closed order-status vocabulary. Unknown values are
// passed through untouched; the engine never invents a status.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderPreparing OrderStatus = "Preparing"
	OrderReady     OrderStatus = "Ready"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// Order is a read-only record from the caller's order snapshot. Callers must
// supply snapshots sorted by creation time descending; the tracking fallback
// "first record" means "most recent overall" only under that ordering.
type Order struct {
	ID            int         `json:"id"`
	Status        OrderStatus `json:"status"`
	TotalAmount   float64     `json:"total_amount"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Validate rejects records missing the fields the engine relies on.
func (o Order) Validate() error {
	if o.ID <= 0 {
		return fmt.Errorf("order: missing id")
	}
	return nil
}

package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem is one line of an order. Price is the unit price frozen at
// order-creation time; later catalog price changes never touch it.
type OrderItem struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`

	OrderID string `gorm:"index;size:36" json:"orderId"`
	Order   Order  `json:"-"`

	MenuItemID string   `gorm:"size:36" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the snapshot is needed
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}

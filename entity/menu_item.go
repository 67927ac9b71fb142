package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the closed set of menu sections. Values are stored lowercase.
type Category string

const (
	CategoryAppetizers Category = "appetizers"
	CategoryMains      Category = "mains"
	CategoryDesserts   Category = "desserts"
	CategoryBeverages  Category = "beverages"
	CategorySalads     Category = "salads"
	CategorySoups      Category = "soups"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAppetizers, CategoryMains, CategoryDesserts,
		CategoryBeverages, CategorySalads, CategorySoups:
		return true
	}
	return false
}

// NormalizeCategory lower-cases raw client input before validation.
func NormalizeCategory(s string) Category {
	return Category(strings.ToLower(strings.TrimSpace(s)))
}

type MenuItem struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `gorm:"size:20" json:"category"`
	ImageURL    string   `json:"imageUrl"`
	IsAvailable bool     `json:"isAvailable"`

	OrderItems []OrderItem `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

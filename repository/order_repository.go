package repository

import (
	"github.com/bhagatankit05/Restuarant-App/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

// ListForUser returns the caller's orders newest first, lines included.
func (r *OrderRepository) ListForUser(userID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// GetForUser fetches one order scoped to its owner. Lookup and ownership
// are a single query so that foreign orders are indistinguishable from
// absent ones.
func (r *OrderRepository) GetForUser(userID, orderID string) (*entity.Order, error) {
	var o entity.Order
	err := r.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(orderID string, status entity.OrderStatus) error {
	return r.db.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *OrderRepository) UpdateItemQuantity(tx *gorm.DB, itemID string, quantity int) error {
	return tx.Model(&entity.OrderItem{}).Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID string, total float64) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total_amount", total).Error
}

func (r *OrderRepository) DeleteItem(tx *gorm.DB, itemID string) error {
	return tx.Delete(&entity.OrderItem{}, "id = ?", itemID).Error
}

// DeleteOrder removes the order and its lines.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID string) error {
	if err := tx.Delete(&entity.OrderItem{}, "order_id = ?", orderID).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, "id = ?", orderID).Error
}

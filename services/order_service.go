package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bhagatankit05/Restuarant-App/entity"
	"github.com/bhagatankit05/Restuarant-App/repository"
	"gorm.io/gorm"
)

// OrderService is the order engine: it creates orders from validated lines
// with prices frozen at creation time, keeps totalAmount equal to the sum
// over the lines after every mutation, and gates line edits on pending
// status.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Notifier *Notifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository, notifier *Notifier) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Notifier: notifier}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type CreateOrderReq struct {
	Items []OrderItemIn `json:"items"`
}

// MenuItemSnapshot is the read-time join of a line to its catalog item for
// client display. It is built on every read, never stored.
type MenuItemSnapshot struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type OrderItemView struct {
	ID         string            `json:"id"`
	MenuItemID string            `json:"menuItemId"`
	Quantity   int               `json:"quantity"`
	Price      float64           `json:"price"`
	MenuItem   *MenuItemSnapshot `json:"menuItem"` // null when the item was deleted
}

type OrderView struct {
	ID          string             `json:"id"`
	TotalAmount float64            `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
	Items       []OrderItemView    `json:"items"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ----- Create -----

// Create validates every requested line against the current catalog,
// freezes prices, and persists the order atomically. Lines keep their
// submitted order and repeated menu-item ids stay distinct lines.
func (s *OrderService) Create(userID string, req *CreateOrderReq) (*OrderView, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var total float64
	lines := make([]entity.OrderItem, 0, len(req.Items))
	snapshots := make(map[string]entity.MenuItem, len(req.Items))

	for _, in := range req.Items {
		if in.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		m, err := s.MenuRepo.FindByID(in.MenuItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemNotFound, in.MenuItemID)
		}
		if err != nil {
			return nil, err
		}
		if !m.IsAvailable {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemUnavailable, m.Name)
		}

		total += m.Price * float64(in.Quantity)
		lines = append(lines, entity.OrderItem{
			MenuItemID: m.ID,
			Quantity:   in.Quantity,
			Price:      m.Price,
		})
		snapshots[m.ID] = *m
	}

	order := &entity.Order{
		UserID:      userID,
		Status:      entity.StatusPending,
		TotalAmount: total,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := s.Repo.CreateItem(tx, &lines[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	order.Items = lines

	go s.Notifier.OrderCreated(order)

	return buildView(order, snapshots), nil
}

// ----- Read -----

func (s *OrderService) ListForUser(userID string) ([]OrderView, error) {
	orders, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	for _, o := range orders {
		for _, it := range o.Items {
			ids = append(ids, it.MenuItemID)
		}
	}
	snapshots, err := s.MenuRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, *buildView(&orders[i], snapshots))
	}
	return views, nil
}

func (s *OrderService) GetForUser(userID, orderID string) (*OrderView, error) {
	order, err := s.loadOwned(userID, orderID)
	if err != nil {
		return nil, err
	}
	return s.expand(order)
}

// ----- Mutations -----

// UpdateStatus accepts any member of the status set; it does not enforce a
// transition graph.
func (s *OrderService) UpdateStatus(userID, orderID, newStatus string) (*OrderView, error) {
	status := entity.OrderStatus(newStatus)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.loadOwned(userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return s.expand(order)
}

// UpdateItemQuantity sets one line's quantity and recomputes the total by
// summing every line, avoiding incremental drift.
func (s *OrderService) UpdateItemQuantity(userID, orderID, itemID string, quantity int) (*OrderView, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	order, err := s.loadOwned(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.StatusPending {
		return nil, ErrOrderNotPending
	}

	idx := findItem(order.Items, itemID)
	if idx < 0 {
		return nil, ErrOrderItemNotFound
	}

	order.Items[idx].Quantity = quantity
	total := sumLines(order.Items)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateItemQuantity(tx, itemID, quantity); err != nil {
			return err
		}
		return s.Repo.UpdateTotal(tx, order.ID, total)
	})
	if err != nil {
		return nil, err
	}
	order.TotalAmount = total
	return s.expand(order)
}

// RemoveItem drops one line. Removing the last line deletes the whole
// order; an order never persists with zero lines. The bool result reports
// that deletion.
func (s *OrderService) RemoveItem(userID, orderID, itemID string) (*OrderView, bool, error) {
	order, err := s.loadOwned(userID, orderID)
	if err != nil {
		return nil, false, err
	}
	if order.Status != entity.StatusPending {
		return nil, false, ErrOrderNotPending
	}

	idx := findItem(order.Items, itemID)
	if idx < 0 {
		return nil, false, ErrOrderItemNotFound
	}

	if len(order.Items) == 1 {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.DeleteOrder(tx, order.ID)
		})
		if err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	remaining := append(order.Items[:idx:idx], order.Items[idx+1:]...)
	total := sumLines(remaining)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.DeleteItem(tx, itemID); err != nil {
			return err
		}
		return s.Repo.UpdateTotal(tx, order.ID, total)
	})
	if err != nil {
		return nil, false, err
	}

	order.Items = remaining
	order.TotalAmount = total
	view, err := s.expand(order)
	return view, false, err
}

func (s *OrderService) Delete(userID, orderID string) error {
	order, err := s.loadOwned(userID, orderID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrder(tx, order.ID)
	})
}

// ----- helpers -----

// loadOwned folds the ownership check into the lookup so a foreign order
// reads as not found.
func (s *OrderService) loadOwned(userID, orderID string) (*entity.Order, error) {
	order, err := s.Repo.GetForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) expand(order *entity.Order) (*OrderView, error) {
	ids := make([]string, 0, len(order.Items))
	for _, it := range order.Items {
		ids = append(ids, it.MenuItemID)
	}
	snapshots, err := s.MenuRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	return buildView(order, snapshots), nil
}

func buildView(order *entity.Order, snapshots map[string]entity.MenuItem) *OrderView {
	items := make([]OrderItemView, 0, len(order.Items))
	for _, it := range order.Items {
		v := OrderItemView{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price,
		}
		if m, ok := snapshots[it.MenuItemID]; ok {
			v.MenuItem = &MenuItemSnapshot{
				Name:        m.Name,
				Description: m.Description,
				ImageURL:    m.ImageURL,
			}
		}
		items = append(items, v)
	}
	return &OrderView{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}

func findItem(items []entity.OrderItem, itemID string) int {
	for i, it := range items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

func sumLines(items []entity.OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

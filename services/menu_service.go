package services

import (
	"context"
	"errors"

	"github.com/bhagatankit05/Restuarant-App/entity"
	"github.com/bhagatankit05/Restuarant-App/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	repo  *repository.MenuRepository
	cache *MenuCache
}

func NewMenuService(repo *repository.MenuRepository, cache *MenuCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

// ----- DTOs from Controller -----

type CreateMenuItemReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

// UpdateMenuItemReq applies only the fields the client sent.
type UpdateMenuItemReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	IsAvailable *bool    `json:"isAvailable"`
}

// List returns available items newest first, from cache when possible.
func (s *MenuService) List(ctx context.Context) ([]entity.MenuItem, error) {
	if items, ok := s.cache.Get(ctx); ok {
		return items, nil
	}

	items, err := s.repo.ListAvailable()
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, items)
	return items, nil
}

func (s *MenuService) Get(id string) (*entity.MenuItem, error) {
	item, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	return item, err
}

func (s *MenuService) Create(ctx context.Context, req *CreateMenuItemReq) (*entity.MenuItem, error) {
	if req.Name == "" || req.Price == 0 || req.Category == "" {
		return nil, ErrMenuFieldsRequired
	}
	if req.Price < 0 {
		return nil, ErrNegativePrice
	}
	category := entity.NormalizeCategory(req.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	item := &entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id string, req *UpdateMenuItemReq) (*entity.MenuItem, error) {
	item, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrNegativePrice
		}
		item.Price = *req.Price
	}
	if req.Category != nil {
		category := entity.NormalizeCategory(*req.Category)
		if !category.Valid() {
			return nil, ErrInvalidCategory
		}
		item.Category = category
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Save(item); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return item, nil
}

// Delete removes the catalog item. Existing orders are untouched; their
// lines hold frozen prices.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}

	s.cache.Invalidate(ctx)
	return nil
}

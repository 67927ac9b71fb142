package repository

import (
	"github.com/bhagatankit05/Restuarant-App/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// ListAvailable returns available items newest first.
func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.
		Where("is_available = ?", true).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs resolves a batch of item ids; missing ids are simply absent
// from the result map.
func (r *MenuRepository) FindByIDs(ids []string) (map[string]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	m := make(map[string]entity.MenuItem, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *MenuRepository) Save(item *entity.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *MenuRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&entity.MenuItem{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

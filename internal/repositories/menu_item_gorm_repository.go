package repositories

import (
	"errors"
	"fmt"

	"hotelmenu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMenuItemRepository is a GORM implementation of MenuItemRepository.
type GORMMenuItemRepository struct {
	db *gorm.DB
}

// NewGORMMenuItemRepository creates a new instance of GORMMenuItemRepository.
func NewGORMMenuItemRepository(db *gorm.DB) *GORMMenuItemRepository {
	return &GORMMenuItemRepository{
		db: db,
	}
}

// GetAll retrieves menu items matching the filter, with their category
// preloaded so responses always carry the category group.
func (r *GORMMenuItemRepository) GetAll(filter MenuItemFilter) ([]models.MenuItem, error) {
	query := r.db.Preload("Category")
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single menu item by its ID from the database.
func (r *GORMMenuItemRepository) GetByID(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.Preload("Category").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to get menu item by ID %s: %w", id, err)
	}
	return &item, nil
}

// GetByCategory retrieves all menu items referencing the given category.
func (r *GORMMenuItemRepository) GetByCategory(categoryID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Preload("Category").Find(&items, "category_id = ?", categoryID).Error; err != nil {
		return nil, fmt.Errorf("failed to get menu items for category %s: %w", categoryID, err)
	}
	return items, nil
}

// Create creates a new menu item in the database.
func (r *GORMMenuItemRepository) Create(item *models.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

// Update updates an existing menu item in the database.
func (r *GORMMenuItemRepository) Update(item *models.MenuItem) error {
	res := r.db.Omit("Category").Save(item) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update menu item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// Delete deletes a menu item by its ID from the database.
func (r *GORMMenuItemRepository) Delete(id string) error {
	res := r.db.Delete(&models.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete menu item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

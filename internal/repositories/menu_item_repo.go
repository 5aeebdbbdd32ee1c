package repositories

import "hotelmenu/internal/models"

// MenuItemFilter narrows menu item listings. Zero-valued fields are ignored.
type MenuItemFilter struct {
	CategoryID string
	Available  *bool
}

// MenuItemRepository defines the interface for menu item data access.
type MenuItemRepository interface {
	// GetAll returns menu items matching the filter, each with its category
	// loaded.
	GetAll(filter MenuItemFilter) ([]models.MenuItem, error)
	GetByID(id string) (*models.MenuItem, error)
	GetByCategory(categoryID string) ([]models.MenuItem, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	Delete(id string) error
}

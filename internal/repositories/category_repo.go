package repositories

import "hotelmenu/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	// GetAllSorted returns all categories ordered by (group, sort_order, name).
	GetAllSorted() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	// GetByName looks a category up by name, case-insensitively.
	GetByName(name string) (*models.Category, error)
	// MaxSortOrder returns the highest sort_order within a group, 0 if the
	// group has no categories.
	MaxSortOrder(group string) (int, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	// Delete removes a category. It fails with ErrCategoryInUse if any menu
	// item still references the category; the check and the delete run as a
	// single atomic operation.
	Delete(id string) error
}

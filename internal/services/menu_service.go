package services

import (
	"errors"
	"fmt"
	"log"

	"hotelmenu/internal/models"
	"hotelmenu/internal/repositories"
)

// MenuService handles business logic for menu items.
type MenuService struct {
	itemRepo     repositories.MenuItemRepository
	categoryRepo repositories.CategoryRepository
	publisher    EventPublisher
}

// NewMenuService creates a new MenuService. The publisher may be nil, in
// which case no catalog events are emitted.
func NewMenuService(itemRepo repositories.MenuItemRepository, categoryRepo repositories.CategoryRepository, publisher EventPublisher) *MenuService {
	return &MenuService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// ListMenuItems retrieves menu items, optionally filtered by category and
// availability.
func (s *MenuService) ListMenuItems(filter repositories.MenuItemFilter) ([]models.MenuItem, error) {
	return s.itemRepo.GetAll(filter)
}

// GetMenuItem retrieves a single menu item by its ID.
func (s *MenuService) GetMenuItem(id string) (*models.MenuItem, error) {
	return s.itemRepo.GetByID(id)
}

// GetMenuItemsByCategory retrieves all menu items in a category. The category
// must exist.
func (s *MenuService) GetMenuItemsByCategory(categoryID string) ([]models.MenuItem, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return nil, err
	}
	return s.itemRepo.GetByCategory(categoryID)
}

// validateItem enforces the rules shared by create and update: the category
// reference must resolve, both prices must be non-negative and every tag must
// come from the fixed vocabulary.
func (s *MenuService) validateItem(item *models.MenuItem) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(item.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategoryRef, item.CategoryID)
		}
		return nil, err
	}
	if item.PriceRoom.IsNegative() || item.PriceRestaurant.IsNegative() {
		return nil, ErrNegativePrice
	}
	for _, tag := range item.Tags {
		if !models.TagVocabulary[tag] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
		}
	}
	return category, nil
}

// CreateMenuItem creates a new menu item after validating its category
// reference, prices and tags.
func (s *MenuService) CreateMenuItem(item *models.MenuItem) error {
	category, err := s.validateItem(item)
	if err != nil {
		return err
	}

	if err := s.itemRepo.Create(item); err != nil {
		return err
	}
	item.Category = *category

	log.Printf("Menu item created: %s (%s, category %s)", item.Name, item.ID, category.Name)
	publishEvent(s.publisher, "menu.created", item)
	return nil
}

// UpdateMenuItem updates an existing menu item, enforcing the same validation
// as CreateMenuItem.
func (s *MenuService) UpdateMenuItem(id string, fields *models.MenuItem) (*models.MenuItem, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	category, err := s.validateItem(fields)
	if err != nil {
		return nil, err
	}

	item.Name = fields.Name
	item.Description = fields.Description
	item.CategoryID = fields.CategoryID
	item.PriceRoom = fields.PriceRoom
	item.PriceRestaurant = fields.PriceRestaurant
	item.Available = fields.Available
	item.ImageURL = fields.ImageURL
	item.Tags = fields.Tags

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	item.Category = *category

	log.Printf("Menu item updated: %s (%s)", item.Name, item.ID)
	publishEvent(s.publisher, "menu.updated", item)
	return item, nil
}

// DeleteMenuItem deletes a menu item by its ID.
func (s *MenuService) DeleteMenuItem(id string) error {
	if err := s.itemRepo.Delete(id); err != nil {
		return err
	}

	log.Printf("Menu item deleted: %s", id)
	publishEvent(s.publisher, "menu.deleted", map[string]string{"id": id})
	return nil
}

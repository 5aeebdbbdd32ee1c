package services

import (
	"errors"
	"fmt"
	"log"

	"hotelmenu/internal/models"
	"hotelmenu/internal/repositories"
)

// CategoryService handles business logic for menu categories.
type CategoryService struct {
	repo      repositories.CategoryRepository
	publisher EventPublisher
}

// NewCategoryService creates a new CategoryService. The publisher may be nil,
// in which case no catalog events are emitted.
func NewCategoryService(repo repositories.CategoryRepository, publisher EventPublisher) *CategoryService {
	return &CategoryService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListCategories retrieves all categories ordered by group, then sort_order,
// then name.
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.repo.GetAllSorted()
}

// GetCategory retrieves a single category by its ID.
func (s *CategoryService) GetCategory(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory creates a new category. The group must be FOOD or DRINKS and
// the name must not collide, case-insensitively, with an existing category.
// A zero sort_order is replaced by max(sort_order within the group) + 1, so a
// new category in an empty group lands at 1.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if !models.ValidGroup(category.Group) {
		return fmt.Errorf("%w: got %q", ErrInvalidGroup, category.Group)
	}

	if existing, err := s.repo.GetByName(category.Name); err == nil && existing != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateCategoryName, category.Name)
	} else if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		return fmt.Errorf("failed to check category name: %w", err)
	}

	if category.SortOrder <= 0 {
		max, err := s.repo.MaxSortOrder(category.Group)
		if err != nil {
			return err
		}
		category.SortOrder = max + 1
	}

	if err := s.repo.Create(category); err != nil {
		return err
	}

	log.Printf("Category created: %s (%s, group %s, sort %d)", category.Name, category.ID, category.Group, category.SortOrder)
	publishEvent(s.publisher, "category.created", category)
	return nil
}

// UpdateCategory updates an existing category's name, group, sort_order and
// image URL, enforcing the same rules as CreateCategory.
func (s *CategoryService) UpdateCategory(id string, fields *models.Category) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !models.ValidGroup(fields.Group) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidGroup, fields.Group)
	}

	// Name uniqueness check must not trip over the row being updated.
	if existing, err := s.repo.GetByName(fields.Name); err == nil && existing != nil && existing.ID != id {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateCategoryName, fields.Name)
	} else if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category.Name = fields.Name
	category.Group = fields.Group
	category.ImageURL = fields.ImageURL
	if fields.SortOrder > 0 {
		category.SortOrder = fields.SortOrder
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}

	log.Printf("Category updated: %s (%s)", category.Name, category.ID)
	publishEvent(s.publisher, "category.updated", category)
	return category, nil
}

// DeleteCategory deletes a category. Deletion is blocked with
// repositories.ErrCategoryInUse while menu items still reference it.
func (s *CategoryService) DeleteCategory(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	log.Printf("Category deleted: %s", id)
	publishEvent(s.publisher, "category.deleted", map[string]string{"id": id})
	return nil
}

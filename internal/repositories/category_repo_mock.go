package repositories

import (
	"sort"
	"strings"
	"sync"

	"hotelmenu/internal/models"

	"github.com/google/uuid"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[string]models.Category
	items      *MockMenuItemRepository // consulted for referential checks on delete
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
// The menu item repository may be nil when referential checks are not needed.
func NewMockCategoryRepository(items *MockMenuItemRepository) *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]models.Category),
		items:      items,
	}
}

// GetAllSorted returns all categories ordered by (group, sort_order, name).
func (r *MockCategoryRepository) GetAllSorted() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Group != list[j].Group {
			return list[i].Group < list[j].Group
		}
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

// GetByID returns a category by its ID.
func (r *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

// GetByName returns a category by name, compared case-insensitively.
func (r *MockCategoryRepository) GetByName(name string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			category := c
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// MaxSortOrder returns the highest sort_order within a group, 0 if empty.
func (r *MockCategoryRepository) MaxSortOrder(group string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	max := 0
	for _, c := range r.categories {
		if c.Group == group && c.SortOrder > max {
			max = c.SortOrder
		}
	}
	return max, nil
}

// Create adds a new category.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = *category
	return nil
}

// Update modifies an existing category.
func (r *MockCategoryRepository) Update(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.categories[category.ID]
	if !ok {
		return ErrCategoryNotFound
	}
	r.categories[category.ID] = *category
	return nil
}

// Delete removes a category, failing when menu items still reference it.
func (r *MockCategoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.categories[id]
	if !ok {
		return ErrCategoryNotFound
	}
	if r.items != nil {
		items, _ := r.items.GetByCategory(id)
		if len(items) > 0 {
			return ErrCategoryInUse
		}
	}
	delete(r.categories, id)
	return nil
}

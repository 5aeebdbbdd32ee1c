package services_test

import (
	"testing"

	"hotelmenu/internal/models"
	"hotelmenu/internal/repositories"
	"hotelmenu/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAllSorted() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) MaxSortOrder(group string) (int, error) {
	args := m.Called(group)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCategoryService_ListCategories(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	expected := []models.Category{
		{ID: "1", Name: "COCKTAILS", Group: models.GroupDrinks, SortOrder: 1},
		{ID: "2", Name: "STARTERS", Group: models.GroupFood, SortOrder: 1},
		{ID: "3", Name: "MAIN COURSES", Group: models.GroupFood, SortOrder: 2},
	}

	mockRepo.On("GetAllSorted").Return(expected, nil).Once()

	categories, err := service.ListCategories()

	assert.NoError(t, err)
	assert.Equal(t, expected, categories)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_DefaultsSortOrder(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	// A group whose max sort_order is 3 appends at 4.
	category := &models.Category{Name: "DESSERTS", Group: models.GroupFood}
	mockRepo.On("GetByName", "DESSERTS").Return(nil, repositories.ErrCategoryNotFound).Once()
	mockRepo.On("MaxSortOrder", models.GroupFood).Return(3, nil).Once()
	mockRepo.On("Create", category).Return(nil).Once()

	err := service.CreateCategory(category)
	assert.NoError(t, err)
	assert.Equal(t, 4, category.SortOrder)
	mockRepo.AssertExpectations(t)

	// An empty group starts at 1.
	category = &models.Category{Name: "COCKTAILS", Group: models.GroupDrinks}
	mockRepo.On("GetByName", "COCKTAILS").Return(nil, repositories.ErrCategoryNotFound).Once()
	mockRepo.On("MaxSortOrder", models.GroupDrinks).Return(0, nil).Once()
	mockRepo.On("Create", category).Return(nil).Once()

	err = service.CreateCategory(category)
	assert.NoError(t, err)
	assert.Equal(t, 1, category.SortOrder)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_KeepsExplicitSortOrder(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	category := &models.Category{Name: "STARTERS", Group: models.GroupFood, SortOrder: 7}
	mockRepo.On("GetByName", "STARTERS").Return(nil, repositories.ErrCategoryNotFound).Once()
	mockRepo.On("Create", category).Return(nil).Once()

	err := service.CreateCategory(category)
	assert.NoError(t, err)
	assert.Equal(t, 7, category.SortOrder)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	// The repository compares case-insensitively, so "starters" collides
	// with an existing "STARTERS".
	existing := &models.Category{ID: "1", Name: "STARTERS", Group: models.GroupFood}
	mockRepo.On("GetByName", "starters").Return(existing, nil).Once()

	err := service.CreateCategory(&models.Category{Name: "starters", Group: models.GroupFood})
	assert.ErrorIs(t, err, services.ErrDuplicateCategoryName)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_InvalidGroup(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	err := service.CreateCategory(&models.Category{Name: "STARTERS", Group: "SNACKS"})
	assert.ErrorIs(t, err, services.ErrInvalidGroup)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_UpdateCategory_AllowsOwnName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	existing := &models.Category{ID: "cat-1", Name: "STARTERS", Group: models.GroupFood, SortOrder: 1}
	mockRepo.On("GetByID", "cat-1").Return(existing, nil).Once()
	// Renaming only the casing must not be treated as a collision.
	mockRepo.On("GetByName", "Starters").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Category")).Return(nil).Once()

	updated, err := service.UpdateCategory("cat-1", &models.Category{Name: "Starters", Group: models.GroupFood, SortOrder: 2})
	assert.NoError(t, err)
	assert.Equal(t, "Starters", updated.Name)
	assert.Equal(t, 2, updated.SortOrder)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrCategoryNotFound).Once()

	_, err := service.UpdateCategory("missing", &models.Category{Name: "STARTERS", Group: models.GroupFood})
	assert.ErrorIs(t, err, repositories.ErrCategoryNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_DeleteCategory_Blocked(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil)

	mockRepo.On("Delete", "cat-1").Return(repositories.ErrCategoryInUse).Once()

	err := service.DeleteCategory("cat-1")
	assert.ErrorIs(t, err, repositories.ErrCategoryInUse)
	mockRepo.AssertExpectations(t)
}

package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/services"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(limit int) ([]models.Category, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func TestCategoryService_ListCapsAtHundred(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil, nil)

	expected := []models.Category{{ID: "1", Title: "Books", Slug: "books"}}
	mockRepo.On("GetAll", 100).Return(expected, nil).Once()

	categories := service.ListCategories()
	assert.Equal(t, expected, categories)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_ListMasksStoreFailure(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil, nil)

	mockRepo.On("GetAll", 100).Return(nil, fmt.Errorf("connection refused")).Once()

	categories := service.ListCategories()
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_GetBySlugAbsent(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo, nil, nil)

	mockRepo.On("GetBySlug", "Books").Return(nil, fmt.Errorf("category with slug Books not found")).Once()

	assert.Nil(t, service.GetCategoryBySlug("Books"))
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateRequiresAdmin(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockCache := new(MockInvalidator)
	service := services.NewCategoryService(mockRepo, mockCache, nil)

	res := service.CreateCategory(normalUser, &models.Category{Title: "Books", Slug: "books"})
	assert.False(t, res.Success)
	assert.Equal(t, "admin access required", res.Message)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockCache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestCategoryService_CreateInvalidatesListing(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockCache := new(MockInvalidator)
	service := services.NewCategoryService(mockRepo, mockCache, nil)

	category := &models.Category{Title: "Books", Slug: "books"}
	mockRepo.On("Create", category).Return(nil).Once()
	mockCache.On("Invalidate", []string{services.CategoriesPath}).Return().Once()

	res := service.CreateCategory(adminUser, category)
	assert.True(t, res.Success)
	assert.Equal(t, category, res.Data)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

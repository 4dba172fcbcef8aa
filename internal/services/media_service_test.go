package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/services"
)

// MockMediaRepository is a mock implementation of repositories.MediaRepository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) GetByID(id string) (*models.Media, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaRepository) Create(media *models.Media) error {
	args := m.Called(media)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockObjectStore is a mock implementation of services.ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Delete(bucket, path string) error {
	args := m.Called(bucket, path)
	return args.Error(0)
}

func TestMediaService_CreateRequiresAdmin(t *testing.T) {
	mockRepo := new(MockMediaRepository)
	service := services.NewMediaService(mockRepo, nil, "images", nil)

	res := service.CreateMediaRecord(normalUser, &models.Media{Alt: "a shoe"})
	assert.False(t, res.Success)
	assert.Equal(t, "admin access required", res.Message)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestMediaService_CreateRecord(t *testing.T) {
	mockRepo := new(MockMediaRepository)
	service := services.NewMediaService(mockRepo, nil, "images", nil)

	media := &models.Media{Alt: "a shoe", URL: "https://cdn.example.com/shoe.png", StoragePath: "shoe.png"}
	mockRepo.On("Create", media).Return(nil).Once()

	res := service.CreateMediaRecord(adminUser, media)
	assert.True(t, res.Success)
	assert.Equal(t, media, res.Data)
	mockRepo.AssertExpectations(t)
}

func TestMediaService_DeleteBinaryBeforeRecord(t *testing.T) {
	mockRepo := new(MockMediaRepository)
	mockStore := new(MockObjectStore)
	service := services.NewMediaService(mockRepo, mockStore, "images", nil)

	media := &models.Media{ID: "m-1", Alt: "a shoe", StoragePath: "shoe.png"}
	mockRepo.On("GetByID", "m-1").Return(media, nil).Once()
	mockStore.On("Delete", "images", "shoe.png").Return(fmt.Errorf("bucket unavailable")).Once()

	res := service.DeleteMedia(adminUser, "m-1")
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "media record kept")

	// The record survives a failed binary delete
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestMediaService_DeleteSuccess(t *testing.T) {
	mockRepo := new(MockMediaRepository)
	mockStore := new(MockObjectStore)
	service := services.NewMediaService(mockRepo, mockStore, "images", nil)

	media := &models.Media{ID: "m-1", Alt: "a shoe", StoragePath: "shoe.png"}
	mockRepo.On("GetByID", "m-1").Return(media, nil).Once()
	mockStore.On("Delete", "images", "shoe.png").Return(nil).Once()
	mockRepo.On("Delete", "m-1").Return(nil).Once()

	res := service.DeleteMedia(adminUser, "m-1")
	assert.True(t, res.Success)

	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestMediaService_DeletePartialFailureIsDistinct(t *testing.T) {
	mockRepo := new(MockMediaRepository)
	mockStore := new(MockObjectStore)
	service := services.NewMediaService(mockRepo, mockStore, "images", nil)

	media := &models.Media{ID: "m-1", Alt: "a shoe", StoragePath: "shoe.png"}
	mockRepo.On("GetByID", "m-1").Return(media, nil).Once()
	mockStore.On("Delete", "images", "shoe.png").Return(nil).Once()
	mockRepo.On("Delete", "m-1").Return(fmt.Errorf("database error")).Once()

	res := service.DeleteMedia(adminUser, "m-1")
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "record removal failed")

	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestMediaService_DeleteMissingRecord(t *testing.T) {
	mockRepo := new(MockMediaRepository)
	mockStore := new(MockObjectStore)
	service := services.NewMediaService(mockRepo, mockStore, "images", nil)

	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("media with ID missing not found")).Once()

	res := service.DeleteMedia(adminUser, "missing")
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "not found")

	mockStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

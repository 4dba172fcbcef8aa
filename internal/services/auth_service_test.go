package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func hashedUser(id, email, password string, isAdmin bool) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &models.User{ID: id, Email: email, Password: string(hash), IsAdmin: isAdmin}
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, services.IsAdmin(nil))
	assert.False(t, services.IsAdmin(&models.User{ID: "u-1"}))
	assert.True(t, services.IsAdmin(&models.User{ID: "u-2", IsAdmin: true}))
}

func TestAuthService_RegisterNeverGrantsAdmin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	mockRepo.On("GetByEmail", "new@example.com").Return(nil, fmt.Errorf("user with email new@example.com not found")).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@example.com" && !u.IsAdmin
	})).Return(nil).Once()

	err := service.RegisterUser(&models.User{Email: "new@example.com", Password: "secret1", IsAdmin: true})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: "u-1", Email: "taken@example.com"}, nil).Once()

	err := service.RegisterUser(&models.User{Email: "taken@example.com", Password: "secret1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	user := hashedUser("u-1", "user@example.com", "correct", false)
	mockRepo.On("GetByEmail", "user@example.com").Return(user, nil).Once()

	token, err := service.LoginUser("user@example.com", "wrong")
	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_CurrentUserRoundTrip(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	user := hashedUser("u-1", "user@example.com", "correct", true)
	mockRepo.On("GetByEmail", "user@example.com").Return(user, nil).Once()
	mockRepo.On("GetByID", "u-1").Return(user, nil).Once()

	token, err := service.LoginUser("user@example.com", "correct")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	resolved, ok := service.CurrentUser(token)
	assert.True(t, ok)
	assert.Equal(t, "u-1", resolved.ID)
	assert.True(t, services.IsAdmin(resolved))
}

func TestAuthService_CurrentUserResolutionFailuresAreUnauthenticated(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	// Empty and malformed tokens
	user, ok := service.CurrentUser("")
	assert.Nil(t, user)
	assert.False(t, ok)

	user, ok = service.CurrentUser("not-a-token")
	assert.Nil(t, user)
	assert.False(t, ok)

	// Valid token but the store cannot resolve the user
	seeded := hashedUser("u-gone", "gone@example.com", "correct", false)
	mockRepo.On("GetByEmail", "gone@example.com").Return(seeded, nil).Once()
	token, err := service.LoginUser("gone@example.com", "correct")
	assert.NoError(t, err)

	mockRepo.On("GetByID", "u-gone").Return(nil, fmt.Errorf("store unavailable")).Once()
	user, ok = service.CurrentUser(token)
	assert.Nil(t, user)
	assert.False(t, ok)

	// A token signed with a different secret never resolves
	other := services.NewAuthService(mockRepo, "other_secret")
	mockRepo.On("GetByEmail", "gone@example.com").Return(seeded, nil).Once()
	foreign, err := other.LoginUser("gone@example.com", "correct")
	assert.NoError(t, err)

	user, ok = service.CurrentUser(foreign)
	assert.Nil(t, user)
	assert.False(t, ok)
}

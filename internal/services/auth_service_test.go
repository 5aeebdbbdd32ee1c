package services_test

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"hotelmenu/internal/models"
	"hotelmenu/internal/repositories"
	"hotelmenu/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
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

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// TestMain suppresses service logging during tests.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	user := &models.User{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	mockRepo.On("GetByUsername", "testuser").Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	token, err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	// The stored password must be a bcrypt hash of the original.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	assert.Equal(t, "admin", user.Role)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_Conflicts(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	user := &models.User{Name: "Test User", Username: "testuser", Email: "test@example.com", Password: "password123"}

	// Username taken.
	mockRepo.On("GetByUsername", "testuser").Return(&models.User{ID: "1"}, nil).Once()
	_, err := authService.RegisterUser(user)
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockRepo.AssertExpectations(t)

	// Email taken; the first record stays untouched.
	mockRepo.On("GetByUsername", "testuser").Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("GetByEmail", "test@example.com").Return(&models.User{ID: "1"}, nil).Once()
	_, err = authService.RegisterUser(user)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Role:     "admin",
	}

	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()

	token, loggedIn, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-123", loggedIn.ID)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser_UniformFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Username: "realuser", Password: string(hashedPassword)}

	// Unknown username and wrong password must be indistinguishable.
	mockRepo.On("GetByUsername", "baduser").Return(nil, repositories.ErrUserNotFound).Once()
	_, _, errUnknown := authService.LoginUser("baduser", "whatever")

	mockRepo.On("GetByUsername", "realuser").Return(user, nil).Once()
	_, _, errWrongPass := authService.LoginUser("realuser", "wrongpass")

	assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, services.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Username: "testuser", Password: string(hashedPassword)}

	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	token, _, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)

	// A fresh token resolves to its principal.
	mockRepo.On("GetByID", "user-123").Return(user, nil).Once()
	principal, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", principal.Username)

	// Garbage is rejected.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// A token for a removed principal is rejected.
	mockRepo.On("GetByID", "user-123").Return(nil, repositories.ErrUserNotFound).Once()
	_, err = authService.ValidateToken(token)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	mockRepo := new(MockUserRepository)
	// Tokens from this service are already expired when issued.
	authService := services.NewAuthService(mockRepo, testJWTSecret, -time.Minute)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Username: "testuser", Password: string(hashedPassword)}

	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	token, _, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Username: "testuser", Password: string(hashedPassword)}

	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	token, _, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)

	assert.NoError(t, authService.Logout(token))

	// The revoked token fails before the principal is even looked up.
	_, err = authService.ValidateToken(token)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestAuthService_ResetPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	oldHash, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Username: "testuser", Password: string(oldHash)}

	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.ResetPassword("testuser", "newpassword1")
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpassword1")))
	mockRepo.AssertExpectations(t)

	// Unknown user propagates not-found.
	mockRepo.On("GetByUsername", "ghost").Return(nil, repositories.ErrUserNotFound).Once()
	err = authService.ResetPassword("ghost", "newpassword1")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}

package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"

	"sosmed/internal/models"
	"sosmed/internal/services"

	"github.com/dgrijalva/jwt-go"
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

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishActivity(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

// TestMain is used to setup the test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, testJWTSecret)

	user := &models.User{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	}

	mockRepo.On("GetByEmail", user.Email).Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created := args.Get(0).(*models.User)
		created.ID = "user-123"
	}).Return(nil).Once()

	token, err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// The stored password must be a bcrypt hash of the original.
	assert.NotEqual(t, "secret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))

	// The avatar is derived from the email.
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")

	// The issued token embeds exactly the new user's id.
	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, testJWTSecret)

	mockRepo.On("GetByEmail", "ann@x.com").Return(&models.User{ID: "existing"}, nil).Once()

	_, err := authService.RegisterUser(&models.User{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	// A duplicate registration must not write anything.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_PublishesEvent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventPublisher)
	authService := services.NewAuthService(mockRepo, mockEvents, testJWTSecret)

	mockRepo.On("GetByEmail", "ann@x.com").Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockEvents.On("PublishActivity", mock.MatchedBy(func(event map[string]interface{}) bool {
		return event["event"] == "user.registered"
	})).Return(nil).Once()

	_, err := authService.RegisterUser(&models.User{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	assert.NoError(t, err)
	mockEvents.AssertExpectations(t)
}

func TestAuthService_RegisterUser_PublishFailureIsNonFatal(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventPublisher)
	authService := services.NewAuthService(mockRepo, mockEvents, testJWTSecret)

	mockRepo.On("GetByEmail", "ann@x.com").Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockEvents.On("PublishActivity", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	token, err := authService.RegisterUser(&models.User{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: string(hashedPassword),
	}

	// Successful login issues a verifiable token.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.LoginUser("ann@x.com", "secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])

	// Wrong password.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.LoginUser("ann@x.com", "wrongpass")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown email fails identically.
	mockRepo.On("GetByEmail", "nobody@x.com").Return(nil, nil).Once()
	_, err = authService.LoginUser("nobody@x.com", "secret1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, testJWTSecret)

	// Garbage tokens are rejected.
	_, err := authService.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret is rejected.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "user-123"})
	foreignString, err := foreign.SignedString([]byte("other_secret"))
	assert.NoError(t, err)

	_, err = authService.ValidateToken(foreignString)
	assert.Error(t, err)
}

package usecase

import (
	"testing"

	"blogicum/internal/entity"
	"blogicum/pkg/jwt"
	"blogicum/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestUserUseCase(userRepo *MockUserRepository) UserUseCase {
	return NewUserUseCase(userRepo, jwt.NewService("test-secret"), logger.New())
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	userRepo.On("GetByUsername", "blogger").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("GetByEmail", "blogger@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*entity.User)
		user.ID = "user-1"
		assert.NotEqual(t, "secret123", user.Password)
	}).Return(nil)

	user, token, err := uc.Register(RegisterInput{
		Username: "blogger",
		Email:    "blogger@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)
	userRepo.AssertExpectations(t)
}

func TestRegister_UsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	userRepo.On("GetByUsername", "blogger").Return(&entity.User{ID: "user-1"}, nil)

	_, _, err := uc.Register(RegisterInput{
		Username: "blogger",
		Email:    "new@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrConflict)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	userRepo.On("GetByUsername", "newbie").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("GetByEmail", "taken@example.com").Return(&entity.User{ID: "user-1"}, nil)

	_, _, err := uc.Register(RegisterInput{
		Username: "newbie",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrConflict)
	userRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &entity.User{ID: "user-1", Email: "blogger@example.com", Password: string(hashed)}
	userRepo.On("GetByEmail", "blogger@example.com").Return(user, nil)

	got, token, err := uc.Login("blogger@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, got.Password)
	userRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &entity.User{ID: "user-1", Email: "blogger@example.com", Password: string(hashed)}
	userRepo.On("GetByEmail", "blogger@example.com").Return(user, nil)

	_, _, err := uc.Login("blogger@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	userRepo.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	userRepo.On("GetByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := uc.Login("ghost@example.com", "secret123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	userRepo.AssertExpectations(t)
}

func TestUpdateProfile_Self(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	user := &entity.User{ID: "user-1", Username: "blogger", Email: "blogger@example.com"}
	userRepo.On("GetByUsername", "blogger").Return(user, nil)
	userRepo.On("Update", mock.AnythingOfType("*entity.User")).Return(nil)

	got, err := uc.UpdateProfile("user-1", "blogger", UpdateProfileInput{
		Username:  "blogger",
		Email:     "blogger@example.com",
		FirstName: "Ada",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	userRepo.AssertExpectations(t)
}

func TestUpdateProfile_OtherUserMaskedAsNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	user := &entity.User{ID: "user-1", Username: "blogger"}
	userRepo.On("GetByUsername", "blogger").Return(user, nil)

	_, err := uc.UpdateProfile("intruder-1", "blogger", UpdateProfileInput{Username: "blogger"})

	assert.ErrorIs(t, err, ErrNotFound)
	userRepo.AssertNotCalled(t, "Update", mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestUpdateProfile_NewUsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	user := &entity.User{ID: "user-1", Username: "blogger", Email: "blogger@example.com"}
	userRepo.On("GetByUsername", "blogger").Return(user, nil)
	userRepo.On("GetByUsername", "taken").Return(&entity.User{ID: "user-2"}, nil)

	_, err := uc.UpdateProfile("user-1", "blogger", UpdateProfileInput{
		Username: "taken",
		Email:    "blogger@example.com",
	})

	assert.ErrorIs(t, err, ErrConflict)
	userRepo.AssertNotCalled(t, "Update", mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestGetByUsername_Missing(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newTestUserUseCase(userRepo)

	userRepo.On("GetByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetByUsername("ghost")

	assert.ErrorIs(t, err, ErrNotFound)
	userRepo.AssertExpectations(t)
}

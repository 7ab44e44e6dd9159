package usecase

import (
	"errors"

	"blogicum/internal/entity"
	"blogicum/internal/repo/persistent"
	"blogicum/pkg/jwt"
	"blogicum/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type UpdateProfileInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

type UserUseCase interface {
	Register(input RegisterInput) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetByUsername(username string) (*entity.User, error)
	UpdateProfile(actorID, username string, input UpdateProfileInput) (*entity.User, error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *userUseCase) Register(input RegisterInput) (*entity.User, string, error) {
	if _, err := uc.userRepo.GetByUsername(input.Username); err == nil {
		return nil, "", ErrConflict
	}
	if _, err := uc.userRepo.GetByEmail(input.Email); err == nil {
		return nil, "", ErrConflict
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", errors.New("failed to process registration")
	}

	user := &entity.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Password:  string(hashedPassword),
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", errors.New("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role()))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *userUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role()))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *userUseCase) GetByUsername(username string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile lets a user edit their own profile. Editing anyone
// else's profile reports not found, the same as an unknown username.
func (uc *userUseCase) UpdateProfile(actorID, username string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if user.ID != actorID {
		return nil, ErrNotFound
	}

	if input.Username != "" && input.Username != user.Username {
		if _, err := uc.userRepo.GetByUsername(input.Username); err == nil {
			return nil, ErrConflict
		}
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		if _, err := uc.userRepo.GetByEmail(input.Email); err == nil {
			return nil, ErrConflict
		}
		user.Email = input.Email
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user %s: %v", user.ID, err)
		return nil, errors.New("failed to update profile")
	}

	user.Password = ""
	return user, nil
}

package service

import (
	"errors"

	"go-mof-tracker/internal/model"
	"go-mof-tracker/internal/repository"
	"go-mof-tracker/pkg/validator"

	"github.com/google/uuid"
)

// UserService covers the user side of the lifecycle.
type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.User, error)
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type userService struct {
	store repository.Store
}

func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.FormatError(errs[0]))
	}

	role := model.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	// 2. Check uniqueness of username and email
	if existing, err := s.store.Users().FindByUsername(req.Username); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicateUsername
	}
	if existing, err := s.store.Users().FindByEmail(req.Email); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicateEmail
	}

	// 3. Create user
	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.store.Users().Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.store.Users().FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.store.Users().FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	response := user.ToResponse()
	return &response, nil
}

package services

import (
	"context"
	"strings"

	"blogly/internal/models"
	"blogly/internal/repositories"
	"blogly/internal/validation"
)

// UserService handles business logic related to users.
type UserService struct {
	runner
}

// NewUserService creates a new UserService.
func NewUserService(uow repositories.UnitOfWork, validate *validation.Validator) *UserService {
	return &UserService{runner: runner{uow: uow, validate: validate}}
}

// ListUsers returns all users ordered by last name, then first name.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return read(ctx, s.uow, func(repos repositories.Repositories) ([]models.User, error) {
		return repos.Users.List()
	})
}

// GetUser returns a user with its posts, newest first.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return read(ctx, s.uow, func(repos repositories.Repositories) (*models.User, error) {
		return repos.Users.GetWithPosts(id)
	})
}

// CreateUser validates and persists a new user.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	user := &models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		ImageURL:  imageOrDefault(req.ImageURL),
	}
	err := s.mutate(ctx, req, nil, func(repos repositories.Repositories) error {
		return repos.Users.Create(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the user's names and image.
func (s *UserService) UpdateUser(ctx context.Context, req UpdateUserRequest) (*models.User, error) {
	var user *models.User
	err := s.mutate(ctx, req,
		func(repos repositories.Repositories) error {
			var err error
			user, err = repos.Users.GetByID(req.ID)
			return err
		},
		func(repos repositories.Repositories) error {
			user.FirstName = strings.TrimSpace(req.FirstName)
			user.LastName = strings.TrimSpace(req.LastName)
			user.ImageURL = imageOrDefault(req.ImageURL)
			return repos.Users.Update(user)
		})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user together with its posts and their tag links.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.mutate(ctx, nil,
		func(repos repositories.Repositories) error {
			_, err := repos.Users.GetByID(id)
			return err
		},
		func(repos repositories.Repositories) error {
			return repos.Users.Delete(id)
		})
}

// imageOrDefault keeps a submitted URL as is and maps a blank one to the
// placeholder, on create and on edit alike.
func imageOrDefault(url string) string {
	if strings.TrimSpace(url) == "" {
		return models.DefaultImageURL
	}
	return url
}

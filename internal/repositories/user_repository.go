package repositories

import "blogly/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	List() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	GetWithPosts(id uint) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	// Delete removes the user, its posts and their tag links.
	Delete(id uint) error
}

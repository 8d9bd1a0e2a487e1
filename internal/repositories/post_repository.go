package repositories

import "blogly/internal/models"

// PostRepository defines the interface for post data access.
type PostRepository interface {
	List() ([]models.Post, error)
	ListRecent(limit int) ([]models.Post, error)
	ListByUser(userID uint) ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	// FindIDsByTitles maps each title that exists to the lowest matching post ID.
	FindIDsByTitles(titles []string) (map[string]uint, error)
	Create(post *models.Post) error
	// Update writes title and content only; owner and creation time never change.
	Update(post *models.Post) error
	// Delete removes the post and its tag links.
	Delete(id uint) error
}

package repositories

import "blogly/internal/models"

// TagRepository defines the interface for tag data access.
type TagRepository interface {
	List() ([]models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	// FindIDsByNames maps each name that exists to its tag ID.
	FindIDsByNames(names []string) (map[string]uint, error)
	Create(tag *models.Tag) error
	Update(tag *models.Tag) error
	// Delete removes the tag and its post links. Posts are kept.
	Delete(id uint) error
}

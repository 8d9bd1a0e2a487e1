package repositories

import (
	"fmt"

	"blogly/internal/models"

	"gorm.io/gorm"
)

const duplicateTagMessage = "a tag with this name already exists"

// GORMTagRepository is a GORM implementation of TagRepository.
type GORMTagRepository struct {
	db *gorm.DB
}

// NewGORMTagRepository creates a new instance of GORMTagRepository.
func NewGORMTagRepository(db *gorm.DB) *GORMTagRepository {
	return &GORMTagRepository{
		db: db,
	}
}

// List returns all tags ordered by name.
func (r *GORMTagRepository) List() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// GetByID retrieves a tag with its posts, newest first.
func (r *GORMTagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("posts.created_at DESC").Order("posts.id DESC")
		}).
		First(&tag, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("tag with ID %d not found", id), "")
	}
	return &tag, nil
}

// FindIDsByNames resolves names by exact match.
func (r *GORMTagRepository) FindIDsByNames(names []string) (map[string]uint, error) {
	ids := make(map[string]uint, len(names))
	if len(names) == 0 {
		return ids, nil
	}
	var tags []models.Tag
	if err := r.db.Select("id", "name").Where("name IN ?", names).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve tag names: %w", err)
	}
	for _, t := range tags {
		ids[t.Name] = t.ID
	}
	return ids, nil
}

// Create inserts a new tag and sets its ID. Posts are linked separately.
func (r *GORMTagRepository) Create(tag *models.Tag) error {
	if err := r.db.Omit("Posts").Create(tag).Error; err != nil {
		return translate(fmt.Errorf("failed to create tag: %w", err), "", duplicateTagMessage)
	}
	return nil
}

// Update renames the tag.
func (r *GORMTagRepository) Update(tag *models.Tag) error {
	res := r.db.Model(&models.Tag{}).Where("id = ?", tag.ID).Update("name", tag.Name)
	if res.Error != nil {
		return translate(fmt.Errorf("failed to update tag: %w", res.Error), "", duplicateTagMessage)
	}
	if res.RowsAffected == 0 {
		return notFound(fmt.Sprintf("tag with ID %d not found for update", tag.ID))
	}
	return nil
}

// Delete removes the tag's post links and then the tag.
func (r *GORMTagRepository) Delete(id uint) error {
	if err := r.db.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
		return fmt.Errorf("failed to delete post links of tag %d: %w", id, err)
	}
	res := r.db.Delete(&models.Tag{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(fmt.Sprintf("tag with ID %d not found for deletion", id))
	}
	return nil
}

package repositories

import (
	"fmt"

	"blogly/internal/models"

	"gorm.io/gorm"
)

// PostTagRepository manages rows of the posts_tags join table.
type PostTagRepository interface {
	DeleteByPost(postID uint) error
	DeleteByTag(tagID uint) error
	Create(links []models.PostTag) error
	ListByPost(postID uint) ([]models.PostTag, error)
	ListByTag(tagID uint) ([]models.PostTag, error)
}

// GORMPostTagRepository is a GORM implementation of PostTagRepository.
type GORMPostTagRepository struct {
	db *gorm.DB
}

// NewGORMPostTagRepository creates a new instance of GORMPostTagRepository.
func NewGORMPostTagRepository(db *gorm.DB) *GORMPostTagRepository {
	return &GORMPostTagRepository{
		db: db,
	}
}

// DeleteByPost removes every link of postID.
func (r *GORMPostTagRepository) DeleteByPost(postID uint) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&models.PostTag{}).Error; err != nil {
		return fmt.Errorf("failed to clear tags of post %d: %w", postID, err)
	}
	return nil
}

// DeleteByTag removes every link of tagID.
func (r *GORMPostTagRepository) DeleteByTag(tagID uint) error {
	if err := r.db.Where("tag_id = ?", tagID).Delete(&models.PostTag{}).Error; err != nil {
		return fmt.Errorf("failed to clear posts of tag %d: %w", tagID, err)
	}
	return nil
}

// Create inserts links in one statement. An empty slice is a no-op.
func (r *GORMPostTagRepository) Create(links []models.PostTag) error {
	if len(links) == 0 {
		return nil
	}
	if err := r.db.Create(&links).Error; err != nil {
		return translate(fmt.Errorf("failed to link posts and tags: %w", err), "", "post and tag are already linked")
	}
	return nil
}

// ListByPost returns the links of postID ordered by tag ID.
func (r *GORMPostTagRepository) ListByPost(postID uint) ([]models.PostTag, error) {
	var links []models.PostTag
	if err := r.db.Where("post_id = ?", postID).Order("tag_id ASC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags of post %d: %w", postID, err)
	}
	return links, nil
}

// ListByTag returns the links of tagID ordered by post ID.
func (r *GORMPostTagRepository) ListByTag(tagID uint) ([]models.PostTag, error) {
	var links []models.PostTag
	if err := r.db.Where("tag_id = ?", tagID).Order("post_id ASC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts of tag %d: %w", tagID, err)
	}
	return links, nil
}

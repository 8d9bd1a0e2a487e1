package repositories

import (
	"fmt"

	"blogly/internal/models"

	"gorm.io/gorm"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

func (r *GORMPostRepository) newestFirst() *gorm.DB {
	return r.db.Preload("User").Order("created_at DESC").Order("id DESC")
}

// List returns every post, newest first.
func (r *GORMPostRepository) List() ([]models.Post, error) {
	var posts []models.Post
	if err := r.newestFirst().Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListRecent returns at most limit posts, newest first.
func (r *GORMPostRepository) ListRecent(limit int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.newestFirst().Limit(limit).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent posts: %w", err)
	}
	return posts, nil
}

// ListByUser returns the posts owned by userID, newest first.
func (r *GORMPostRepository) ListByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.newestFirst().Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts of user %d: %w", userID, err)
	}
	return posts, nil
}

// GetByID retrieves a post with its owner and its tags ordered by name.
func (r *GORMPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("User").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("post with ID %d not found", id), "")
	}
	return &post, nil
}

// FindIDsByTitles resolves titles by exact match.
func (r *GORMPostRepository) FindIDsByTitles(titles []string) (map[string]uint, error) {
	ids := make(map[string]uint, len(titles))
	if len(titles) == 0 {
		return ids, nil
	}
	var posts []models.Post
	if err := r.db.Select("id", "title").Where("title IN ?", titles).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve post titles: %w", err)
	}
	for _, p := range posts {
		if _, seen := ids[p.Title]; !seen {
			ids[p.Title] = p.ID
		}
	}
	return ids, nil
}

// Create inserts a new post and sets its ID. Tags are linked separately.
func (r *GORMPostRepository) Create(post *models.Post) error {
	if err := r.db.Omit("User", "Tags").Create(post).Error; err != nil {
		return translate(fmt.Errorf("failed to create post: %w", err), "", "post owner does not exist")
	}
	return nil
}

// Update writes title and content.
func (r *GORMPostRepository) Update(post *models.Post) error {
	res := r.db.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]any{
		"title":   post.Title,
		"content": post.Content,
	})
	if res.Error != nil {
		return translate(fmt.Errorf("failed to update post: %w", res.Error), "", "")
	}
	if res.RowsAffected == 0 {
		return notFound(fmt.Sprintf("post with ID %d not found for update", post.ID))
	}
	return nil
}

// Delete removes the post's tag links and then the post.
func (r *GORMPostRepository) Delete(id uint) error {
	if err := r.db.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
		return fmt.Errorf("failed to delete tag links of post %d: %w", id, err)
	}
	res := r.db.Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(fmt.Sprintf("post with ID %d not found for deletion", id))
	}
	return nil
}

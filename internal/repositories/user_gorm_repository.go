package repositories

import (
	"fmt"

	"blogly/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// List returns all users ordered by last name, then first name.
func (r *GORMUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("last_name ASC").Order("first_name ASC").Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("user with ID %d not found", id), "")
	}
	return &user, nil
}

// GetWithPosts retrieves a user with its posts, newest first.
func (r *GORMUserRepository) GetWithPosts(id uint) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Order("id DESC")
		}).
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("user with ID %d not found", id), "")
	}
	return &user, nil
}

// Create inserts a new user and sets its ID.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Omit("Posts").Create(user).Error; err != nil {
		return translate(fmt.Errorf("failed to create user: %w", err), "", "user violates a database constraint")
	}
	return nil
}

// Update writes the user's name and image fields.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"image_url":  user.ImageURL,
	})
	if res.Error != nil {
		return translate(fmt.Errorf("failed to update user: %w", res.Error), "", "user violates a database constraint")
	}
	if res.RowsAffected == 0 {
		return notFound(fmt.Sprintf("user with ID %d not found for update", user.ID))
	}
	return nil
}

// Delete removes the user's post links, its posts, then the user itself.
// Callers run it inside a transaction so the cascade is all-or-nothing.
func (r *GORMUserRepository) Delete(id uint) error {
	ownedPosts := r.db.Model(&models.Post{}).Select("id").Where("user_id = ?", id)
	if err := r.db.Where("post_id IN (?)", ownedPosts).Delete(&models.PostTag{}).Error; err != nil {
		return fmt.Errorf("failed to delete tag links of user %d: %w", id, err)
	}
	if err := r.db.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
		return fmt.Errorf("failed to delete posts of user %d: %w", id, err)
	}
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(fmt.Sprintf("user with ID %d not found for deletion", id))
	}
	return nil
}

package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the repositories bound to one transaction.
type Repositories struct {
	Users    UserRepository
	Posts    PostRepository
	Tags     TagRepository
	PostTags PostTagRepository
}

// UnitOfWork scopes a group of repository calls to one transaction.
type UnitOfWork interface {
	// Do runs fn in a transaction. The transaction commits when fn returns nil
	// and rolls back when fn returns an error or panics.
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

// GORMUnitOfWork is a UnitOfWork backed by gorm transactions.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new instance of GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{db: db}
}

// Do implements UnitOfWork.
func (u *GORMUnitOfWork) Do(ctx context.Context, fn func(repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMRepositories(tx))
	})
}

// NewGORMRepositories binds every repository to db.
func NewGORMRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    NewGORMUserRepository(db),
		Posts:    NewGORMPostRepository(db),
		Tags:     NewGORMTagRepository(db),
		PostTags: NewGORMPostTagRepository(db),
	}
}

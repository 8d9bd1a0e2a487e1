package services

import (
	"context"
	"strings"
	"time"

	"blogly/internal/models"
	"blogly/internal/repositories"
	"blogly/internal/validation"
)

// PostService handles business logic related to posts and their tags.
type PostService struct {
	runner
	reconciler  *Reconciler
	recentLimit int
	now         func() time.Time
}

// PostOption customizes a PostService.
type PostOption func(*PostService)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) PostOption {
	return func(s *PostService) { s.now = now }
}

// WithRecentLimit sets how many posts ListRecentPosts returns by default.
func WithRecentLimit(n int) PostOption {
	return func(s *PostService) { s.recentLimit = n }
}

// NewPostService creates a new PostService.
func NewPostService(uow repositories.UnitOfWork, validate *validation.Validator, reconciler *Reconciler, opts ...PostOption) *PostService {
	s := &PostService{
		runner:      runner{uow: uow, validate: validate},
		reconciler:  reconciler,
		recentLimit: 5,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListPosts returns every post, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return read(ctx, s.uow, func(repos repositories.Repositories) ([]models.Post, error) {
		return repos.Posts.List()
	})
}

// ListRecentPosts returns the newest limit posts. A non-positive limit uses
// the configured default.
func (s *PostService) ListRecentPosts(ctx context.Context, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = s.recentLimit
	}
	return read(ctx, s.uow, func(repos repositories.Repositories) ([]models.Post, error) {
		return repos.Posts.ListRecent(limit)
	})
}

// ListUserPosts returns the posts of an existing user, newest first.
func (s *PostService) ListUserPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	return read(ctx, s.uow, func(repos repositories.Repositories) ([]models.Post, error) {
		if _, err := repos.Users.GetByID(userID); err != nil {
			return nil, err
		}
		return repos.Posts.ListByUser(userID)
	})
}

// GetPost returns a post with its owner and tags.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return read(ctx, s.uow, func(repos repositories.Repositories) (*models.Post, error) {
		return repos.Posts.GetByID(id)
	})
}

// CreatePost stamps the creation time, persists the post for an existing
// user and links the submitted tags.
func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, ReconcileResult, error) {
	var (
		post   *models.Post
		result ReconcileResult
	)
	err := s.mutate(ctx, req,
		func(repos repositories.Repositories) error {
			_, err := repos.Users.GetByID(req.UserID)
			return err
		},
		func(repos repositories.Repositories) error {
			created := &models.Post{
				Title:     strings.TrimSpace(req.Title),
				Content:   req.Content,
				CreatedAt: s.now(),
				UserID:    req.UserID,
			}
			if err := repos.Posts.Create(created); err != nil {
				return err
			}
			var err error
			if result, err = s.reconciler.Reconcile(repos, created.ID, AnchorPost, req.Tags); err != nil {
				return err
			}
			post, err = repos.Posts.GetByID(created.ID)
			return err
		})
	if err != nil {
		return nil, ReconcileResult{}, err
	}
	return post, result, nil
}

// UpdatePost replaces title, content and tag set. The owner and the creation
// time are left untouched.
func (s *PostService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, ReconcileResult, error) {
	var (
		post   *models.Post
		result ReconcileResult
	)
	err := s.mutate(ctx, req,
		func(repos repositories.Repositories) error {
			_, err := repos.Posts.GetByID(req.ID)
			return err
		},
		func(repos repositories.Repositories) error {
			changed := &models.Post{ID: req.ID, Title: strings.TrimSpace(req.Title), Content: req.Content}
			if err := repos.Posts.Update(changed); err != nil {
				return err
			}
			var err error
			if result, err = s.reconciler.Reconcile(repos, req.ID, AnchorPost, req.Tags); err != nil {
				return err
			}
			post, err = repos.Posts.GetByID(req.ID)
			return err
		})
	if err != nil {
		return nil, ReconcileResult{}, err
	}
	return post, result, nil
}

// DeletePost removes a post and its tag links. Tags are kept.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.mutate(ctx, nil,
		func(repos repositories.Repositories) error {
			_, err := repos.Posts.GetByID(id)
			return err
		},
		func(repos repositories.Repositories) error {
			return repos.Posts.Delete(id)
		})
}

package services

import (
	"context"
	"strings"

	"blogly/internal/models"
	"blogly/internal/repositories"
	"blogly/internal/validation"
)

// TagService handles business logic related to tags and their posts.
type TagService struct {
	runner
	reconciler *Reconciler
}

// NewTagService creates a new TagService.
func NewTagService(uow repositories.UnitOfWork, validate *validation.Validator, reconciler *Reconciler) *TagService {
	return &TagService{
		runner:     runner{uow: uow, validate: validate},
		reconciler: reconciler,
	}
}

// ListTags returns all tags ordered by name.
func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return read(ctx, s.uow, func(repos repositories.Repositories) ([]models.Tag, error) {
		return repos.Tags.List()
	})
}

// GetTag returns a tag with its posts.
func (s *TagService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	return read(ctx, s.uow, func(repos repositories.Repositories) (*models.Tag, error) {
		return repos.Tags.GetByID(id)
	})
}

// CreateTag persists a tag and links the posts named by title. A duplicate
// name fails with an IntegrityError.
func (s *TagService) CreateTag(ctx context.Context, req CreateTagRequest) (*models.Tag, ReconcileResult, error) {
	var (
		tag    *models.Tag
		result ReconcileResult
	)
	err := s.mutate(ctx, req, nil, func(repos repositories.Repositories) error {
		created := &models.Tag{Name: strings.TrimSpace(req.Name)}
		if err := repos.Tags.Create(created); err != nil {
			return err
		}
		var err error
		if result, err = s.reconciler.Reconcile(repos, created.ID, AnchorTag, req.Posts); err != nil {
			return err
		}
		tag, err = repos.Tags.GetByID(created.ID)
		return err
	})
	if err != nil {
		return nil, ReconcileResult{}, err
	}
	return tag, result, nil
}

// UpdateTag renames the tag and replaces its post set.
func (s *TagService) UpdateTag(ctx context.Context, req UpdateTagRequest) (*models.Tag, ReconcileResult, error) {
	var (
		tag    *models.Tag
		result ReconcileResult
	)
	err := s.mutate(ctx, req,
		func(repos repositories.Repositories) error {
			_, err := repos.Tags.GetByID(req.ID)
			return err
		},
		func(repos repositories.Repositories) error {
			if err := repos.Tags.Update(&models.Tag{ID: req.ID, Name: strings.TrimSpace(req.Name)}); err != nil {
				return err
			}
			var err error
			if result, err = s.reconciler.Reconcile(repos, req.ID, AnchorTag, req.Posts); err != nil {
				return err
			}
			tag, err = repos.Tags.GetByID(req.ID)
			return err
		})
	if err != nil {
		return nil, ReconcileResult{}, err
	}
	return tag, result, nil
}

// DeleteTag removes a tag and its post links. Posts are kept.
func (s *TagService) DeleteTag(ctx context.Context, id uint) error {
	return s.mutate(ctx, nil,
		func(repos repositories.Repositories) error {
			_, err := repos.Tags.GetByID(id)
			return err
		},
		func(repos repositories.Repositories) error {
			return repos.Tags.Delete(id)
		})
}

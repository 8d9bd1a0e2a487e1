package services_test

import (
	"context"
	"errors"
	"testing"

	"blogly/internal/apperror"
	"blogly/internal/models"
	"blogly/internal/services"
	"blogly/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTagService_CreateTag(t *testing.T) {
	repos := newMockRepos()
	service := services.NewTagService(repos, validation.New(), services.NewReconciler(false))

	repos.tags.On("Create", &models.Tag{Name: "intro"}).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Tag).ID = 2
	}).Return(nil).Once()
	repos.postTags.On("DeleteByTag", uint(2)).Return(nil).Once()
	repos.posts.On("FindIDsByTitles", []string{"Hello"}).Return(map[string]uint{"Hello": 9}, nil).Once()
	repos.postTags.On("Create", []models.PostTag{{PostID: 9, TagID: 2}}).Return(nil).Once()
	repos.tags.On("GetByID", uint(2)).Return(&models.Tag{ID: 2, Name: "intro"}, nil).Once()

	tag, result, err := service.CreateTag(context.Background(), services.CreateTagRequest{Name: " intro ", Posts: []string{"Hello"}})
	require.NoError(t, err)
	assert.Equal(t, "intro", tag.Name)
	assert.Equal(t, []string{"Hello"}, result.Linked)
	repos.assertExpectations(t)
}

func TestTagService_CreateTag_Duplicate(t *testing.T) {
	repos := newMockRepos()
	service := services.NewTagService(repos, validation.New(), services.NewReconciler(false))

	dup := apperror.NewIntegrity("a tag with this name already exists", errors.New("UNIQUE constraint failed: tags.name"))
	repos.tags.On("Create", mock.AnythingOfType("*models.Tag")).Return(dup).Once()

	_, _, err := service.CreateTag(context.Background(), services.CreateTagRequest{Name: "intro"})
	assert.True(t, apperror.IsIntegrity(err))
	repos.postTags.AssertNotCalled(t, "DeleteByTag", mock.Anything)
	repos.assertExpectations(t)
}

func TestTagService_CreateTag_NameRequired(t *testing.T) {
	repos := newMockRepos()
	service := services.NewTagService(repos, validation.New(), services.NewReconciler(false))

	_, _, err := service.CreateTag(context.Background(), services.CreateTagRequest{Name: "\t"})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "name", appErr.Field)
	assert.Equal(t, "Name is required", appErr.Message)
	repos.tags.AssertNotCalled(t, "Create", mock.Anything)
}

func TestTagService_UpdateTag_StrictRejectsUnknownTitles(t *testing.T) {
	repos := newMockRepos()
	service := services.NewTagService(repos, validation.New(), services.NewReconciler(true))

	repos.tags.On("GetByID", uint(2)).Return(&models.Tag{ID: 2, Name: "intro"}, nil).Once()
	repos.tags.On("Update", &models.Tag{ID: 2, Name: "welcome"}).Return(nil).Once()
	repos.postTags.On("DeleteByTag", uint(2)).Return(nil).Once()
	repos.posts.On("FindIDsByTitles", []string{"Nope"}).Return(map[string]uint{}, nil).Once()

	_, _, err := service.UpdateTag(context.Background(), services.UpdateTagRequest{ID: 2, Name: "welcome", Posts: []string{"Nope"}})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.TypeValidation, appErr.Type)
	assert.Equal(t, "posts", appErr.Field)
	assert.Contains(t, appErr.Message, "Nope")
	repos.postTags.AssertNotCalled(t, "Create", mock.Anything)
	repos.assertExpectations(t)
}

func TestTagService_DeleteTag(t *testing.T) {
	repos := newMockRepos()
	service := services.NewTagService(repos, validation.New(), services.NewReconciler(false))

	repos.tags.On("GetByID", uint(2)).Return(&models.Tag{ID: 2}, nil).Once()
	repos.tags.On("Delete", uint(2)).Return(nil).Once()

	assert.NoError(t, service.DeleteTag(context.Background(), 2))
	repos.assertExpectations(t)
}

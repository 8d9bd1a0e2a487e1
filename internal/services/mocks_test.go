package services_test

import (
	"context"

	"blogly/internal/models"
	"blogly/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetWithPosts(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List() ([]models.Post, error) {
	args := m.Called()
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListRecent(limit int) ([]models.Post, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(userID uint) ([]models.Post, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) FindIDsByTitles(titles []string) (map[string]uint, error) {
	args := m.Called(titles)
	return args.Get(0).(map[string]uint), args.Error(1)
}

func (m *MockPostRepository) Create(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Update(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockTagRepository is a mock implementation of repositories.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) List() ([]models.Tag, error) {
	args := m.Called()
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByID(id uint) (*models.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindIDsByNames(names []string) (map[string]uint, error) {
	args := m.Called(names)
	return args.Get(0).(map[string]uint), args.Error(1)
}

func (m *MockTagRepository) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) Update(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPostTagRepository is a mock implementation of repositories.PostTagRepository
type MockPostTagRepository struct {
	mock.Mock
}

func (m *MockPostTagRepository) DeleteByPost(postID uint) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockPostTagRepository) DeleteByTag(tagID uint) error {
	args := m.Called(tagID)
	return args.Error(0)
}

func (m *MockPostTagRepository) Create(links []models.PostTag) error {
	args := m.Called(links)
	return args.Error(0)
}

func (m *MockPostTagRepository) ListByPost(postID uint) ([]models.PostTag, error) {
	args := m.Called(postID)
	return args.Get(0).([]models.PostTag), args.Error(1)
}

func (m *MockPostTagRepository) ListByTag(tagID uint) ([]models.PostTag, error) {
	args := m.Called(tagID)
	return args.Get(0).([]models.PostTag), args.Error(1)
}

// mockRepos bundles one mock per repository.
type mockRepos struct {
	users    *MockUserRepository
	posts    *MockPostRepository
	tags     *MockTagRepository
	postTags *MockPostTagRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		users:    new(MockUserRepository),
		posts:    new(MockPostRepository),
		tags:     new(MockTagRepository),
		postTags: new(MockPostTagRepository),
	}
}

// Do runs fn directly against the mocks.
func (m *mockRepos) Do(_ context.Context, fn func(repos repositories.Repositories) error) error {
	return fn(repositories.Repositories{
		Users:    m.users,
		Posts:    m.posts,
		Tags:     m.tags,
		PostTags: m.postTags,
	})
}

func (m *mockRepos) assertExpectations(t mock.TestingT) {
	m.users.AssertExpectations(t)
	m.posts.AssertExpectations(t)
	m.tags.AssertExpectations(t)
	m.postTags.AssertExpectations(t)
}

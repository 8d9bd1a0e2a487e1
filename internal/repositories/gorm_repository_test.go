package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogly/internal/apperror"
	"blogly/internal/database"
	"blogly/internal/models"
	"blogly/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (repositories.Repositories, *repositories.GORMUnitOfWork) {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	return repositories.NewGORMRepositories(db), repositories.NewGORMUnitOfWork(db)
}

func seedPost(t *testing.T, repos repositories.Repositories, userID uint, title string, at time.Time) *models.Post {
	t.Helper()
	p := &models.Post{Title: title, Content: "body", CreatedAt: at, UserID: userID}
	require.NoError(t, repos.Posts.Create(p))
	return p
}

func TestUserRepository_NotFound(t *testing.T) {
	repos, _ := setupRepos(t)

	_, err := repos.Users.GetByID(42)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(repos.Users.Update(&models.User{ID: 42, FirstName: "a", LastName: "b"})))
	assert.True(t, apperror.IsNotFound(repos.Users.Delete(42)))
}

func TestPostRepository_CreateRequiresOwner(t *testing.T) {
	repos, _ := setupRepos(t)

	err := repos.Posts.Create(&models.Post{Title: "t", Content: "c", CreatedAt: time.Now(), UserID: 999})
	assert.True(t, apperror.IsIntegrity(err))
}

func TestPostRepository_FindIDsByTitles_LowestIDWins(t *testing.T) {
	repos, _ := setupRepos(t)
	user := &models.User{FirstName: "Jane", LastName: "Doe", ImageURL: models.DefaultImageURL}
	require.NoError(t, repos.Users.Create(user))

	now := time.Now()
	first := seedPost(t, repos, user.ID, "Same", now)
	seedPost(t, repos, user.ID, "Same", now.Add(time.Second))
	other := seedPost(t, repos, user.ID, "Other", now)

	ids, err := repos.Posts.FindIDsByTitles([]string{"Same", "Other", "Missing"})
	require.NoError(t, err)
	assert.Equal(t, map[string]uint{"Same": first.ID, "Other": other.ID}, ids)
}

func TestPostRepository_UpdateLeavesOwnerAndTime(t *testing.T) {
	repos, _ := setupRepos(t)
	user := &models.User{FirstName: "Jane", LastName: "Doe", ImageURL: models.DefaultImageURL}
	require.NoError(t, repos.Users.Create(user))
	at := time.Date(2023, 7, 1, 8, 30, 0, 0, time.UTC)
	post := seedPost(t, repos, user.ID, "Before", at)

	require.NoError(t, repos.Posts.Update(&models.Post{ID: post.ID, Title: "After", Content: "new"}))

	got, err := repos.Posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, at.Unix(), got.CreatedAt.Unix())
}

func TestPostTagRepository_DuplicatePairRejected(t *testing.T) {
	repos, _ := setupRepos(t)
	user := &models.User{FirstName: "Jane", LastName: "Doe", ImageURL: models.DefaultImageURL}
	require.NoError(t, repos.Users.Create(user))
	post := seedPost(t, repos, user.ID, "One", time.Now())
	tag := &models.Tag{Name: "go"}
	require.NoError(t, repos.Tags.Create(tag))

	link := models.PostTag{PostID: post.ID, TagID: tag.ID}
	require.NoError(t, repos.PostTags.Create([]models.PostTag{link}))
	assert.True(t, apperror.IsIntegrity(repos.PostTags.Create([]models.PostTag{link})))

	links, err := repos.PostTags.ListByTag(tag.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.PostTag{link}, links)
}

func TestTagRepository_RenameToExistingName(t *testing.T) {
	repos, _ := setupRepos(t)
	a := &models.Tag{Name: "a"}
	b := &models.Tag{Name: "b"}
	require.NoError(t, repos.Tags.Create(a))
	require.NoError(t, repos.Tags.Create(b))

	err := repos.Tags.Update(&models.Tag{ID: b.ID, Name: "a"})
	assert.True(t, apperror.IsIntegrity(err))
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	repos, uow := setupRepos(t)
	boom := errors.New("boom")

	err := uow.Do(context.Background(), func(tx repositories.Repositories) error {
		if err := tx.Tags.Create(&models.Tag{Name: "temp"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	tags, err := repos.Tags.List()
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestUnitOfWork_RollsBackOnPanic(t *testing.T) {
	repos, uow := setupRepos(t)

	assert.Panics(t, func() {
		_ = uow.Do(context.Background(), func(tx repositories.Repositories) error {
			_ = tx.Tags.Create(&models.Tag{Name: "temp"})
			panic("handler bug")
		})
	})

	tags, err := repos.Tags.List()
	require.NoError(t, err)
	assert.Empty(t, tags)
}

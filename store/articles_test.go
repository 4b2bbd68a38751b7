package store

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/blogmux/blogmux/model"
	"github.com/blogmux/blogmux/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStores(t *testing.T) *Stores {
	t.Helper()
	return New(utils.NewTestDB(t), nil)
}

func registerTestUser(t *testing.T, s *Stores, username string) *model.User {
	t.Helper()
	user, err := s.Users.Register(context.Background(), model.RegisterUserInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	return user
}

func createTestArticle(t *testing.T, s *Stores, authorID string) *model.Article {
	t.Helper()
	article, err := s.Articles.Create(context.Background(), authorID, model.NewArticleInput{
		Title:       "Hello World",
		Description: "a greeting",
		Body:        "the whole greeting, in long form",
		TagList:     []string{"greetings", "go", "greetings"},
	})
	require.NoError(t, err)
	return article
}

func TestCreateArticleGeneratesSlug(t *testing.T) {
	s := newTestStores(t)
	author := registerTestUser(t, s, "amara")

	article := createTestArticle(t, s, author.Id)
	assert.Regexp(t, regexp.MustCompile(`^hello-world-[0-9a-z]{6}$`), article.Slug)
	assert.Equal(t, author.Id, article.AuthorID)
	// duplicate tags collapse, order preserved
	assert.JSONEq(t, `["greetings","go"]`, string(article.TagList))

	other := createTestArticle(t, s, author.Id)
	assert.NotEqual(t, article.Slug, other.Slug)
}

func TestGetArticleNotFound(t *testing.T) {
	s := newTestStores(t)

	_, err := s.Articles.Get(context.Background(), "no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateArticleAppliesFieldsIndependently(t *testing.T) {
	s := newTestStores(t)
	author := registerTestUser(t, s, "amara")
	article := createTestArticle(t, s, author.Id)

	// a description-only patch must leave the body untouched
	desc := "new description"
	updated, err := s.Articles.Update(context.Background(), article.Id, model.UpdateArticleInput{
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "new description", updated.Description)
	assert.Equal(t, article.Body, updated.Body)
	assert.Equal(t, article.Title, updated.Title)

	// and symmetrically, a body-only patch must leave the description alone
	body := "new body"
	updated, err = s.Articles.Update(context.Background(), article.Id, model.UpdateArticleInput{
		Body: &body,
	})
	require.NoError(t, err)
	assert.Equal(t, "new description", updated.Description)
	assert.Equal(t, "new body", updated.Body)

	// slug is never recomputed on update
	title := "A Completely Different Title"
	updated, err = s.Articles.Update(context.Background(), article.Id, model.UpdateArticleInput{
		Title: &title,
	})
	require.NoError(t, err)
	assert.Equal(t, article.Slug, updated.Slug)
}

func TestUpdateArticleNotFound(t *testing.T) {
	s := newTestStores(t)
	title := "x"

	_, err := s.Articles.Update(context.Background(), "no-such-id", model.UpdateArticleInput{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateArticleVersionConflict(t *testing.T) {
	s := newTestStores(t)
	author := registerTestUser(t, s, "amara")
	article := createTestArticle(t, s, author.Id)

	// emulate a writer in another process bumping the version between the
	// snapshot load and the guarded write
	db := s.Articles.db
	skewed := false
	err := db.Callback().Update().Before("gorm:update").Register("version_skew", func(tx *gorm.DB) {
		if skewed {
			return
		}
		skewed = true
		// The test DB allows one connection, which the in-flight update's
		// transaction already holds; going through db here would deadlock.
		tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE articles SET version = version + 1 WHERE id = ?", article.Id)
	})
	require.NoError(t, err)

	title := "renamed"
	_, err = s.Articles.Update(context.Background(), article.Id, model.UpdateArticleInput{Title: &title})
	require.ErrorIs(t, err, ErrConflict)
}

func TestExpiredDeadlineSurfacesStoreTimeout(t *testing.T) {
	s := newTestStores(t)
	author := registerTestUser(t, s, "amara")
	article := createTestArticle(t, s, author.Id)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := s.Articles.Get(ctx, article.Id)
	require.ErrorIs(t, err, ErrStoreTimeout)

	_, err = s.Articles.Like(ctx, article.Id, author.Id)
	require.ErrorIs(t, err, ErrStoreTimeout)
}

func TestLikeToggle(t *testing.T) {
	s := newTestStores(t)
	author := registerTestUser(t, s, "amara")
	reader := registerTestUser(t, s, "badru")
	article := createTestArticle(t, s, author.Id)

	likes, err := s.Articles.Like(context.Background(), article.Id, reader.Id)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, reader.Id, likes[0].UserID)

	// a second like by the same user is rejected
	_, err = s.Articles.Like(context.Background(), article.Id, reader.Id)
	require.ErrorIs(t, err, ErrAlreadyLiked)

	// unlike removes the single matching entry
	updated, err := s.Articles.Unlike(context.Background(), article.Id, reader.Id)
	require.NoError(t, err)
	assert.Len(t, updated.Likes, 0)

	// unlike without a prior like is rejected
	_, err = s.Articles.Unlike(context.Background(), article.Id, reader.Id)
	require.ErrorIs(t, err, ErrNotLiked)
}

func TestLikeUnknownArticle(t *testing.T) {
	s := newTestStores(t)
	reader := registerTestUser(t, s, "badru")

	_, err := s.Articles.Like(context.Background(), "no-such-id", reader.Id)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Articles.Unlike(context.Background(), "no-such-id", reader.Id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLikeMaintainsFavorites(t *testing.T) {
	s := newTestStores(t)
	author := registerTestUser(t, s, "amara")
	reader := registerTestUser(t, s, "badru")
	article := createTestArticle(t, s, author.Id)

	_, err := s.Articles.Like(context.Background(), article.Id, reader.Id)
	require.NoError(t, err)

	n, err := s.Articles.LikeCount(context.Background(), article.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var favs []model.UserFavorite
	require.NoError(t, s.Users.db.Find(&favs, "user_id = ?", reader.Id).Error)
	require.Len(t, favs, 1)
	assert.Equal(t, article.Id, favs[0].ArticleID)

	_, err = s.Articles.Unlike(context.Background(), article.Id, reader.Id)
	require.NoError(t, err)

	require.NoError(t, s.Users.db.Find(&favs, "user_id = ?", reader.Id).Error)
	assert.Len(t, favs, 0)
}

func TestConcurrentLikesKeepSetSemantics(t *testing.T) {
	s := newTestStores(t)
	author := registerTestUser(t, s, "amara")
	article := createTestArticle(t, s, author.Id)

	const readers = 8
	ids := make([]string, readers)
	for i := range ids {
		ids[i] = registerTestUser(t, s, "reader"+string(rune('a'+i))).Id
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			// each user double-likes, exactly one attempt may win
			s.Articles.Like(context.Background(), article.Id, userID)
			s.Articles.Like(context.Background(), article.Id, userID)
		}(id)
	}
	wg.Wait()

	likes, err := s.Articles.likesOf(context.Background(), article.Id)
	require.NoError(t, err)
	assert.Len(t, likes, readers)
}

func TestDeleteArticleRemovesDependents(t *testing.T) {
	s := newTestStores(t)
	author := registerTestUser(t, s, "amara")
	reader := registerTestUser(t, s, "badru")
	article := createTestArticle(t, s, author.Id)

	_, err := s.Articles.Like(context.Background(), article.Id, reader.Id)
	require.NoError(t, err)
	_, err = s.Comments.Add(context.Background(), article.Id, reader.Id, "nice one")
	require.NoError(t, err)

	require.NoError(t, s.Articles.Delete(context.Background(), article.Id))

	_, err = s.Articles.Get(context.Background(), article.Id)
	require.ErrorIs(t, err, ErrNotFound)

	var likeCount, commentCount int64
	s.Users.db.Model(&model.ArticleLike{}).Where("article_id = ?", article.Id).Count(&likeCount)
	s.Users.db.Model(&model.Comment{}).Where("article_id = ?", article.Id).Count(&commentCount)
	assert.Zero(t, likeCount)
	assert.Zero(t, commentCount)

	require.ErrorIs(t, s.Articles.Delete(context.Background(), article.Id), ErrNotFound)
}

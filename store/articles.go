package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blogmux/blogmux/model"
	"github.com/blogmux/blogmux/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maxSlugAttempts bounds the retry loop on a slug uniqueness violation.
// With a 6-digit base36 suffix collisions are rare but not impossible.
const maxSlugAttempts = 3

// ArticleStore is the article store: content rows plus the like toggle.
type ArticleStore struct {
	db    *gorm.DB
	locks *keyedMutex
	cache *LikeCache
}

// Create persists a new article owned by authorID. The slug is derived from
// the title exactly once per attempt; generation is retried on a collision.
func (s *ArticleStore) Create(ctx context.Context, authorID string, in model.NewArticleInput) (*model.Article, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tags, err := json.Marshal(utils.DedupeStrings(in.TagList))
	if err != nil {
		return nil, normalize(err, "encode tag list")
	}

	article := model.Article{
		Id:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		TagList:     datatypes.JSON(tags),
		AuthorID:    authorID,
	}

	for attempt := 0; ; attempt++ {
		article.Slug = utils.Slugify(in.Title)
		err := s.db.WithContext(ctx).Create(&article).Error
		if err == nil {
			return &article, nil
		}
		if !isUniqueViolation(err) || attempt+1 >= maxSlugAttempts {
			return nil, normalize(err, "create article")
		}
	}
}

// Get loads an article with its author, likes and comments. Comments come
// back newest-first regardless of storage order.
func (s *ArticleStore) Get(ctx context.Context, id string) (*model.Article, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var article model.Article
	err := s.db.WithContext(ctx).
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		First(&article, "id = ?", id).Error
	if err != nil {
		return nil, normalize(err, "query article")
	}
	return &article, nil
}

// Update applies a content patch. Each present field is applied
// independently and absent fields are left untouched; in particular a patch
// carrying only a description never touches the body. The write is version
// guarded: a row changed since load fails with ErrConflict.
func (s *ArticleStore) Update(ctx context.Context, id string, patch model.UpdateArticleInput) (*model.Article, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Body != nil {
		fields["body"] = *patch.Body
	}
	if len(fields) == 0 {
		return article, nil
	}
	fields["version"] = article.Version + 1

	res := s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ? AND version = ?", id, article.Version).
		Updates(fields)
	if res.Error != nil {
		return nil, normalize(res.Error, "update article")
	}
	if res.RowsAffected == 0 {
		return nil, ErrConflict
	}
	return s.Get(ctx, id)
}

// Delete removes an article together with its likes, comments and favorite
// rows, all or nothing.
func (s *ArticleStore) Delete(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Article{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Delete(&model.ArticleLike{}, "article_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Comment{}, "article_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.UserFavorite{}, "article_id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return normalize(err, "delete article")
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

// Like toggles a like on for userID. Fails with ErrAlreadyLiked when the
// (article, user) pair is already present. The membership test and the
// insert act on the same snapshot: writers on one article are serialized by
// the per-article lock and the whole mutation is one transaction, with the
// composite primary key as the backstop. Returns the updated like set.
func (s *ArticleStore) Like(ctx context.Context, articleID, userID string) ([]model.ArticleLike, error) {
	unlock := s.locks.Lock(articleID)
	defer unlock()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Article{}, "id = ?", articleID).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&model.ArticleLike{}).
			Where("article_id = ? AND user_id = ?", articleID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyLiked
		}
		like := model.ArticleLike{ArticleID: articleID, UserID: userID, CreatedAt: time.Now()}
		if err := tx.Create(&like).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyLiked
			}
			return err
		}
		// Liking is also favoriting: keep the user's favorites set in step.
		fav := model.UserFavorite{UserID: userID, ArticleID: articleID, CreatedAt: time.Now()}
		return tx.Where("user_id = ? AND article_id = ?", userID, articleID).
			FirstOrCreate(&fav).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyLiked) {
			return nil, ErrAlreadyLiked
		}
		return nil, normalize(err, "like article")
	}

	s.cache.Invalidate(ctx, articleID)
	return s.likesOf(ctx, articleID)
}

// Unlike toggles a like off for userID. Fails with ErrNotLiked when no
// matching pair exists. Returns the updated article.
func (s *ArticleStore) Unlike(ctx context.Context, articleID, userID string) (*model.Article, error) {
	unlock := s.locks.Lock(articleID)
	defer unlock()

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Article{}, "id = ?", articleID).Error; err != nil {
			return err
		}
		res := tx.Where("article_id = ? AND user_id = ?", articleID, userID).
			Delete(&model.ArticleLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotLiked
		}
		return tx.Where("user_id = ? AND article_id = ?", userID, articleID).
			Delete(&model.UserFavorite{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotLiked) {
			return nil, ErrNotLiked
		}
		return nil, normalize(err, "unlike article")
	}

	s.cache.Invalidate(ctx, articleID)
	return s.Get(ctx, articleID)
}

// LikeCount reads the like count through the cache, falling back to a DB
// count on a miss.
func (s *ArticleStore) LikeCount(ctx context.Context, articleID string) (int64, error) {
	if n, ok := s.cache.Get(ctx, articleID); ok {
		return n, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int64
	if err := s.db.WithContext(ctx).Model(&model.ArticleLike{}).
		Where("article_id = ?", articleID).
		Count(&n).Error; err != nil {
		return 0, normalize(err, "count likes")
	}
	s.cache.Set(ctx, articleID, n)
	return n, nil
}

func (s *ArticleStore) likesOf(ctx context.Context, articleID string) ([]model.ArticleLike, error) {
	likes := []model.ArticleLike{}
	if err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&likes).Error; err != nil {
		return nil, normalize(err, "query likes")
	}
	return likes, nil
}

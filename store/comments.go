package store

import (
	"context"
	"strings"
	"time"

	"github.com/blogmux/blogmux/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CommentStore is the comment subsystem: an append-only, author-scoped
// collection of comments referenced from an article.
type CommentStore struct {
	db *gorm.DB
}

// Add appends a comment by authorID to an article. Fails with
// ErrEmptyComment on blank text and ErrNotFound on an unknown article.
// Ordering is carried by the creation timestamp; reads are newest-first.
func (s *CommentStore) Add(ctx context.Context, articleID, authorID, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	comment := model.Comment{
		Id:        uuid.New().String(),
		ArticleID: articleID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Article{}, "id = ?", articleID).Error; err != nil {
			return err
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, normalize(err, "add comment")
	}
	return &comment, nil
}

// List returns an article's comments sorted newest-first regardless of
// storage order. Fails with ErrNotFound on an unknown article.
func (s *CommentStore) List(ctx context.Context, articleID string) ([]model.Comment, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).First(&model.Article{}, "id = ?", articleID).Error; err != nil {
		return nil, normalize(err, "query article")
	}

	comments := []model.Comment{}
	if err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, normalize(err, "query comments")
	}
	return comments, nil
}

// Delete removes a comment from an article. Fails with ErrForbidden when the
// requester is not the comment's author and ErrNotFound when either the
// article or the comment does not exist. The removal is a single
// transactional delete, so no partial state is ever visible to readers.
func (s *CommentStore) Delete(ctx context.Context, articleID, commentID, requesterID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.First(&comment, "id = ? AND article_id = ?", commentID, articleID).Error; err != nil {
			return err
		}
		if comment.AuthorID != requesterID {
			return ErrForbidden
		}
		return tx.Delete(&comment).Error
	})
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			return ErrForbidden
		}
		return normalize(err, "delete comment")
	}
	return nil
}

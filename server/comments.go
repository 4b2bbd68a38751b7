package server

import (
	"net/http"

	"github.com/blogmux/blogmux/model"
	"github.com/gin-gonic/gin"
)

// AddComment appends the caller's comment to an article and returns the
// updated article, newest comment first.
func (h *Handler) AddComment(c *gin.Context) {
	var in model.NewCommentInput
	if !bindJSON(c, &in) {
		return
	}

	articleID := c.Param("article_id")
	if _, err := h.stores.Comments.Add(c.Request.Context(), articleID, currentUserID(c), in.Text); err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}

	article, err := h.stores.Articles.Get(c.Request.Context(), articleID)
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}
	h.fillFavoritesCount(c, article)
	c.JSON(http.StatusOK, article)
}

// ListComments returns an article's comments newest-first.
func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.stores.Comments.List(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DeleteComment removes the caller's own comment and returns the remaining
// comments. Non-authors are rejected outright; comment authorship is
// immutable so the check needs no further context.
func (h *Handler) DeleteComment(c *gin.Context) {
	articleID := c.Param("article_id")
	err := h.stores.Comments.Delete(c.Request.Context(), articleID, c.Param("comment_id"), currentUserID(c))
	if err != nil {
		abortStoreError(c, err, "Comment not found")
		return
	}

	comments, err := h.stores.Comments.List(c.Request.Context(), articleID)
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}
	c.JSON(http.StatusOK, comments)
}

package server

import (
	"net/http"

	"github.com/blogmux/blogmux/model"
	"github.com/gin-gonic/gin"
)

// CreateArticle persists a new article owned by the caller and returns it
// wrapped in an article envelope.
func (h *Handler) CreateArticle(c *gin.Context) {
	var in model.NewArticleInput
	if !bindJSON(c, &in) {
		return
	}

	article, err := h.stores.Articles.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// GetArticle returns one of the caller's own articles. Reading someone
// else's article through this route is denied as not-found; public exposure
// is a listing concern, not this read contract.
func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.stores.Articles.Get(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}
	if err := AuthorizeOwner(currentUserID(c), article.AuthorID); err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}

	h.fillFavoritesCount(c, article)
	c.JSON(http.StatusOK, article)
}

// UpdateArticle applies a content patch to one of the caller's articles.
func (h *Handler) UpdateArticle(c *gin.Context) {
	var in model.UpdateArticleInput
	if !bindJSON(c, &in) {
		return
	}

	article, err := h.stores.Articles.Get(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}
	if err := AuthorizeOwner(currentUserID(c), article.AuthorID); err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}

	updated, err := h.stores.Articles.Update(c.Request.Context(), article.Id, in)
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}

	h.fillFavoritesCount(c, updated)
	c.JSON(http.StatusOK, updated)
}

// DeleteArticle removes one of the caller's articles.
func (h *Handler) DeleteArticle(c *gin.Context) {
	article, err := h.stores.Articles.Get(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}
	if err := AuthorizeOwner(currentUserID(c), article.AuthorID); err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}

	if err := h.stores.Articles.Delete(c.Request.Context(), article.Id); err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Article removed"})
}

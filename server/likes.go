package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LikeArticle toggles the caller's like on. Any authenticated user may like
// any article; a second like on the same article is rejected.
func (h *Handler) LikeArticle(c *gin.Context) {
	likes, err := h.stores.Articles.Like(c.Request.Context(), c.Param("article_id"), currentUserID(c))
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}
	c.JSON(http.StatusOK, likes)
}

// UnlikeArticle toggles the caller's like off and returns the updated
// article. Unliking an article that was never liked is rejected.
func (h *Handler) UnlikeArticle(c *gin.Context) {
	article, err := h.stores.Articles.Unlike(c.Request.Context(), c.Param("article_id"), currentUserID(c))
	if err != nil {
		abortStoreError(c, err, "Article not found")
		return
	}

	h.fillFavoritesCount(c, article)
	c.JSON(http.StatusOK, article)
}

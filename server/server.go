// Package server maps the HTTP JSON API onto the stores. All domain-error to
// status mapping happens here, at the route boundary.
package server

import (
	"github.com/blogmux/blogmux/model"
	"github.com/blogmux/blogmux/store"
	Logger "github.com/blogmux/blogmux/utils/log"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	stores *store.Stores
}

func New(stores *store.Stores) *Handler {
	return &Handler{stores: stores}
}

// currentUserID returns the authenticated user id placed on the request by
// the JWT middleware. Empty on unauthenticated routes.
func currentUserID(c *gin.Context) string {
	return c.Request.Header.Get("sub")
}

// fillFavoritesCount populates the computed like count on an article before
// rendering. A failed count is logged and rendered as zero rather than
// failing the read.
func (h *Handler) fillFavoritesCount(c *gin.Context, article *model.Article) {
	n, err := h.stores.Articles.LikeCount(c.Request.Context(), article.Id)
	if err != nil {
		Logger.Log.Warn("like count unavailable for article ", article.Id, ": ", err)
		return
	}
	article.FavoritesCount = n
}

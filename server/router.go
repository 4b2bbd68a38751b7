package server

import (
	"net/http"

	"github.com/blogmux/blogmux/server/middlewares"
	"github.com/blogmux/blogmux/utils/flag"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

// BuildRouter wires every route of the API onto a gin engine. Registration
// and login are the only unauthenticated routes besides the health check.
func BuildRouter(h *Handler) *gin.Engine {
	// Default with the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(gintrace.Middleware(flag.ServiceName))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.POST("/users", h.RegisterUser)
	router.POST("/users/login", h.Login)

	authed := router.Group("/", middlewares.JWT())
	{
		authed.GET("/users/:user_id", h.GetUser)
		authed.PUT("/users/:user_id", h.UpdateUser)

		authed.POST("/articles", h.CreateArticle)
		authed.GET("/articles/:article_id", h.GetArticle)
		authed.PUT("/articles/:article_id", h.UpdateArticle)
		authed.DELETE("/articles/:article_id", h.DeleteArticle)

		authed.PUT("/articles/like/:article_id", h.LikeArticle)
		authed.PUT("/articles/unlike/:article_id", h.UnlikeArticle)

		authed.POST("/articles/comments/:article_id", h.AddComment)
		authed.GET("/articles/comments/:article_id", h.ListComments)
		authed.DELETE("/articles/comments/:article_id/:comment_id", h.DeleteComment)
	}

	return router
}

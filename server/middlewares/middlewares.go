package middlewares

import (
	"net/http"
	"os"

	Logger "github.com/blogmux/blogmux/utils/log"
	"github.com/blogmux/blogmux/utils/token"
	"github.com/gin-gonic/gin"
)

// Setup validates package preconditions. It must be called before any
// middleware is used: an unset signing secret would make every issued token
// verifiable with an empty key.
func Setup() {
	if os.Getenv("JWT_SECRET") == "" {
		// Abort directly, running without a signing secret is never safe.
		Logger.Log.Fatal("JWT_SECRET is not set")
	}
}

// JWT reads the caller's token from the x-auth-token header, verifies it and
// replaces the header with a "sub" field carrying the user's id. Requests
// without a valid token are rejected with a 401.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("x-auth-token")
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			c.Abort()
			return
		}

		userID, err := token.Parse(raw)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			c.Abort()
			return
		}

		// Successfully validated the token, replace the header field with
		// the verified user id so handlers never see raw credentials.
		c.Request.Header.Del("x-auth-token")
		c.Request.Header.Set("sub", userID)

		c.Next()
	}
}

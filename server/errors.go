package server

import (
	"net/http"

	"github.com/blogmux/blogmux/store"
	Logger "github.com/blogmux/blogmux/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError is one entry of a validation error array, shaped like the
// express-validator output the API's clients already understand.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// bindJSON binds and validates a JSON body. On failure it writes the 400
// response itself and returns false.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Msg: fieldErrorMsg(fe), Param: fe.Field()})
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": out})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
	return false
}

func fieldErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "Text" {
			return "Enter a comment"
		}
		return fe.Field() + " is required"
	case "email":
		return "Please enter a valid email"
	case "min":
		if fe.Field() == "Password" {
			return "Please enter a password with 6 or more characters"
		}
		return fe.Field() + " is too short"
	default:
		return fe.Field() + " is invalid"
	}
}

// abortStoreError maps a store error to a response. notFoundMsg names the
// resource in the 404 body; everything outside the domain taxonomy is a 500.
func abortStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": notFoundMsg})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"msg": "Forbidden"})
	case errors.Is(err, store.ErrAlreadyLiked):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Article already liked"})
	case errors.Is(err, store.ErrNotLiked):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Article hasn't been liked yet"})
	case errors.Is(err, store.ErrEmptyComment):
		c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Msg: "Enter a comment", Param: "Text"}}})
	case errors.Is(err, store.ErrDuplicateUser):
		c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Msg: "User already exists"}}})
	case errors.Is(err, store.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"errors": []FieldError{{Msg: "Invalid Credentials"}}})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"msg": "Concurrent update, please retry"})
	case errors.Is(err, store.ErrStoreTimeout):
		c.JSON(http.StatusServiceUnavailable, gin.H{"msg": "Temporarily unavailable, please retry"})
	default:
		Logger.Log.Error("server error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
	}
}

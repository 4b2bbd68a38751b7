package server

import (
	"net/http"
	"time"

	"github.com/blogmux/blogmux/model"
	Logger "github.com/blogmux/blogmux/utils/log"
	"github.com/blogmux/blogmux/utils/token"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

// userProfile is the credential-free rendering of an account.
type userProfile struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserProfile(user *model.User) userProfile {
	var p userProfile
	// copier matches by field name, so PasswordHash can never leak into the
	// response shape.
	if err := copier.Copy(&p, user); err != nil {
		Logger.Log.Error("profile copy failed: ", err)
	}
	return p
}

// RegisterUser creates an account and answers with a signed token.
func (h *Handler) RegisterUser(c *gin.Context) {
	var in model.RegisterUserInput
	if !bindJSON(c, &in) {
		return
	}

	user, err := h.stores.Users.Register(c.Request.Context(), in)
	if err != nil {
		abortStoreError(c, err, "User not found")
		return
	}

	signed, err := token.New(user.Id)
	if err != nil {
		abortStoreError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, model.TokenResponse{Token: signed})
}

// Login authenticates an email/password pair and answers with a signed token.
func (h *Handler) Login(c *gin.Context) {
	var in model.LoginInput
	if !bindJSON(c, &in) {
		return
	}

	user, err := h.stores.Users.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		abortStoreError(c, err, "User not found")
		return
	}

	signed, err := token.New(user.Id)
	if err != nil {
		abortStoreError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, model.TokenResponse{Token: signed})
}

// GetUser returns an account without its credentials.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.stores.Users.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		abortStoreError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, newUserProfile(user))
}

// UpdateUser edits the caller's own profile. Each present field is applied
// independently.
func (h *Handler) UpdateUser(c *gin.Context) {
	if err := AuthorizeOwner(currentUserID(c), c.Param("user_id")); err != nil {
		abortStoreError(c, err, "User not found")
		return
	}

	var in model.UpdateUserInput
	if !bindJSON(c, &in) {
		return
	}

	user, err := h.stores.Users.Update(c.Request.Context(), c.Param("user_id"), in)
	if err != nil {
		abortStoreError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": user.Username, "email": user.Email})
}

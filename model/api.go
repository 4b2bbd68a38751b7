package model

// Request payloads bound from JSON bodies. Validation is declared with
// binding tags and enforced by the router; failed bindings surface as a 400
// with a field-level error array.

type RegisterUserInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserInput carries a profile patch. Absent fields are left untouched,
// so every field is a pointer.
type UpdateUserInput struct {
	Username *string `json:"username" binding:"omitempty"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Bio      *string `json:"bio" binding:"omitempty"`
	Image    *string `json:"image" binding:"omitempty"`
}

type NewArticleInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	TagList     []string `json:"tagList" binding:"omitempty"`
}

// UpdateArticleInput carries a content patch for an article. Each present
// field is applied independently; absent fields are left untouched.
type UpdateArticleInput struct {
	Title       *string `json:"title" binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty"`
	Body        *string `json:"body" binding:"omitempty"`
}

type NewCommentInput struct {
	Text string `json:"text" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

package store

import (
	"context"

	"github.com/blogmux/blogmux/model"
	"github.com/blogmux/blogmux/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserStore is the identity store: account records, credentials and profile.
type UserStore struct {
	db *gorm.DB
}

// Register creates an account with a hashed password. Fails with
// ErrDuplicateUser when the email or username is already taken.
func (s *UserStore) Register(ctx context.Context, in model.RegisterUserInput) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? OR username = ?", in.Email, in.Username).
		Count(&count).Error; err != nil {
		return nil, normalize(err, "check existing user")
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, normalize(err, "hash password")
	}

	user := model.User{
		Id:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Unique indexes are the backstop for the pre-check racing with a
		// concurrent registration.
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, normalize(err, "create user")
	}
	return &user, nil
}

// Authenticate resolves an email/password pair to the account it belongs to.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, normalize(err, "query user")
	}
	if err := utils.CheckPasswordHash(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Get loads an account by id.
func (s *UserStore) Get(ctx context.Context, id string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, normalize(err, "query user")
	}
	return &user, nil
}

// Update applies a profile patch. Each present field is applied
// independently; a present password is re-hashed.
func (s *UserStore) Update(ctx context.Context, id string, patch model.UpdateUserInput) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Username != nil {
		fields["username"] = *patch.Username
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Bio != nil {
		fields["bio"] = *patch.Bio
	}
	if patch.Image != nil {
		fields["image"] = *patch.Image
	}
	if patch.Password != nil {
		hash, err := utils.HashPassword(*patch.Password)
		if err != nil {
			return nil, normalize(err, "hash password")
		}
		fields["password_hash"] = hash
	}
	if len(fields) == 0 {
		return user, nil
	}

	if err := s.db.WithContext(ctx).Model(user).Updates(fields).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, normalize(err, "update user")
	}
	return s.Get(ctx, id)
}

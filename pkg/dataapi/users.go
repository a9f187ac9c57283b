package dataapi

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// User represents a DataAPI user account.
type User struct {
	ID         string   `json:"id,omitempty"         yaml:"id,omitempty"`
	Username   string   `json:"username"             yaml:"username"`
	Email      string   `json:"email,omitempty"      yaml:"email,omitempty"`
	FullName   string   `json:"fullName,omitempty"   yaml:"fullName,omitempty"`
	Roles      []string `json:"roles,omitempty"      yaml:"roles,omitempty"`
	Active     bool     `json:"active"               yaml:"active"`
	CreateTime string   `json:"createTime,omitempty" yaml:"createTime,omitempty"`
	UpdateTime string   `json:"updateTime,omitempty" yaml:"updateTime,omitempty"`
}

// UserCreateRequest represents a request to create a user.
type UserCreateRequest struct {
	Username string   `json:"username"           yaml:"username"`
	Email    string   `json:"email"              yaml:"email"`
	Password string   `json:"password"           yaml:"password"`
	FullName string   `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	Roles    []string `json:"roles,omitempty"    yaml:"roles,omitempty"`
}

// Validate checks the request before it is sent.
func (r *UserCreateRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 128)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("invalid user create request: %w", err)
	}

	return nil
}

// UserUpdateRequest represents a request to update a user. Nil fields are
// left unchanged.
type UserUpdateRequest struct {
	Email    *string  `json:"email,omitempty"    yaml:"email,omitempty"`
	FullName *string  `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	Roles    []string `json:"roles,omitempty"    yaml:"roles,omitempty"`
	Active   *bool    `json:"active,omitempty"   yaml:"active,omitempty"`
}

// LoginRequest authenticates a user.
type LoginRequest struct {
	Username      string `json:"username"                yaml:"username"`
	Password      string `json:"password"                yaml:"password"`
	TwoFactorCode string `json:"twoFactorCode,omitempty" yaml:"twoFactorCode,omitempty"`
}

// LoginResponse carries the token issued on successful login.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"            yaml:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty" yaml:"refreshToken,omitempty"`
	ExpiresIn    int    `json:"expiresIn,omitempty"    yaml:"expiresIn,omitempty"`
	TokenType    string `json:"tokenType,omitempty"    yaml:"tokenType,omitempty"`
	User         *User  `json:"user,omitempty"         yaml:"user,omitempty"`
}

// PasswordChangeRequest changes the current user's password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" yaml:"currentPassword"`
	NewPassword     string `json:"newPassword"     yaml:"newPassword"`
}

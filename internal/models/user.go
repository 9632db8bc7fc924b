package models

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used when hashing user passwords
var PasswordCost = 12

// User represents a club account. Password holds an opaque credential
// (a bcrypt hash when created through UserService) and is never serialized.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// CreateUserRequest is the request body for registering a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// NewUser builds the stored user. The password is stored as given.
func NewUser(id int64, req CreateUserRequest) *User {
	return &User{
		ID:       id,
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks if the provided password matches the stored hash (constant-time via bcrypt)
func (u *User) VerifyPassword(password string) bool {
	if u.Password == "" {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

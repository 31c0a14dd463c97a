// Package usecase defines the application-layer interfaces and their
// input/output DTOs. Implementations live in the impl subpackage.
package usecase

import "context"

// SignUpInput carries the credentials for a new account.
type SignUpInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput carries the issued access token back to the caller.
type AuthOutput struct {
	Token string `json:"token"`
}

// AuthUsecase orchestrates signup and login flows over the password hasher,
// the token service and the user repository.
type AuthUsecase interface {
	// SignUp hashes the password, persists the new user and issues a token.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// Login verifies the credentials and issues a token. Unknown usernames
	// and wrong passwords fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}

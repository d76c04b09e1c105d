package domain

import "context"

// TokenPair is the credential pair issued at login and registration.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthUsecase is the credential-service boundary: it authenticates
// email/password pairs, issues token pairs and revokes refresh tokens.
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*User, *TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	IssueTokens(user *User) (*TokenPair, error)
	// Authenticate resolves an access token into a fresh user record.
	Authenticate(ctx context.Context, accessToken string) (*User, error)
}

package usecase

import (
	"context"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

// TokenService is the credential-service surface the auth usecase consumes;
// satisfied by pkg/auth.TokenService.
type TokenService interface {
	Issue(userID string) (access, refresh string, err error)
	ParseAccess(tokenString string) (string, error)
	Revoke(ctx context.Context, refreshToken string) error
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   TokenService
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens TokenService) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Login authenticates an email/password pair and issues a token pair. The
// same generic error covers unknown emails and wrong passwords.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, nil, apperror.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.Unauthorized("Invalid credentials")
	}

	pair, err := u.IssueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (u *authUsecase) IssueTokens(user *domain.User) (*domain.TokenPair, error) {
	access, refresh, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{Access: access, Refresh: refresh}, nil
}

// Logout revokes the refresh token. Missing, malformed, expired or
// already-revoked tokens all surface as a 400.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return apperror.BadRequest("refresh_token is required")
	}
	if err := u.tokens.Revoke(ctx, refreshToken); err != nil {
		if err == auth.ErrInvalidToken {
			return apperror.BadRequest("Invalid token")
		}
		return apperror.Internal(err)
	}
	return nil
}

// Authenticate resolves an access token into a fresh user record. The role
// is always read from storage, never trusted from the token.
func (u *authUsecase) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	userID, err := u.tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid token")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("Account is inactive")
	}
	return user, nil
}

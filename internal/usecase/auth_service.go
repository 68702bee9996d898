package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pitwallhq/pitwall/internal/domain/user"
)

// TokenSigner issues and verifies opaque access tokens.
type TokenSigner interface {
	Issue(username string) (string, error)
	Verify(raw string) (string, error)
}

type AuthService struct {
	users  user.Repository
	signer TokenSigner
}

func NewAuthService(users user.Repository, signer TokenSigner) *AuthService {
	return &AuthService{
		users:  users,
		signer: signer,
	}
}

// Login exchanges credentials for an access token. Unknown usernames,
// disabled accounts and wrong passwords all produce the same error so
// callers cannot probe the user table.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	}

	account, exists, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("get user by username: %w", err)
	}
	if !exists || account.Disabled {
		return "", fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	}

	accessToken, err := s.signer.Issue(account.Username)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return accessToken, nil
}

// VerifyAccessToken resolves a bearer token back to a principal. The
// user is re-resolved so removed or disabled accounts stop working
// even while their token is still live.
func (s *AuthService) VerifyAccessToken(ctx context.Context, raw string) (user.Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", ErrUnauthorized)
	}

	username, err := s.signer.Verify(raw)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: could not validate credentials", ErrUnauthorized)
	}

	account, exists, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return user.Principal{}, fmt.Errorf("get user by username: %w", err)
	}
	if !exists || account.Disabled {
		return user.Principal{}, fmt.Errorf("%w: could not validate credentials", ErrUnauthorized)
	}

	return user.Principal{
		Username: account.Username,
		FullName: account.FullName,
		Email:    account.Email,
	}, nil
}

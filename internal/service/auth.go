package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/corkboardhq/corkd/internal/domain"
	"github.com/corkboardhq/corkd/internal/github"
	"github.com/corkboardhq/corkd/internal/store"
	"github.com/corkboardhq/corkd/pkg/cryptox"
	"github.com/corkboardhq/corkd/pkg/slogx"
	"github.com/corkboardhq/corkd/pkg/tokenx"
)

var (
	ErrAlreadyExists   = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user with this email does not exist")
	ErrBadCredentials  = errors.New("password does not match")
	ErrInvalidToken    = errors.New("invalid token")
	ErrAccountNotFound = errors.New("account no longer exists")
	ErrInvalidCode     = errors.New("invalid authorization code")
)

// AuthService orchestrates registration, local login, federated login and
// token resolution. It owns the "create user if absent, then log in"
// policy for the federated path.
type AuthService struct {
	Store  store.Store
	Codec  *tokenx.Codec
	GitHub *github.Client
}

// LoginResult is the (user id, bearer token) pair handed to a client on
// any successful login.
type LoginResult struct {
	UserID int64
	Token  string
}

// Register creates a LOCAL user. Fails with ErrAlreadyExists when the
// email is taken, regardless of the existing account's provider.
func (s *AuthService) Register(
	ctx context.Context,
	email, password, name string,
) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Provider:     domain.ProviderLocal,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAlreadyExists
		}
		return domain.User{}, err
	}

	return user, nil
}

// Login authenticates an email/password pair and issues a fresh token.
// Federated accounts skip the credential check entirely: they only reach
// this path through LoginWithGitHub, which supplies the provider access
// token in the password slot.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrUserNotFound
		}
		return LoginResult{}, err
	}

	if user.Provider == domain.ProviderLocal {
		if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
			return LoginResult{}, ErrBadCredentials
		}
	}

	token, err := s.Codec.Issue(user.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginResult{UserID: user.ID, Token: token}, nil
}

// ResolvePrincipal verifies a bearer token and re-resolves its subject
// against the user store. The second step is what stops a token from
// outliving its account.
func (s *AuthService) ResolvePrincipal(ctx context.Context, token string) (domain.User, error) {
	userID, err := s.Codec.Verify(token)
	if err != nil {
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrAccountNotFound
		}
		return domain.User{}, err
	}

	return user, nil
}

// LoginWithGitHub exchanges the authorization code for a GitHub identity,
// creates a FEDERATED user on first sight of the email, then runs the
// normal login flow with the provider access token in the password slot.
func (s *AuthService) LoginWithGitHub(ctx context.Context, code string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	profile, err := s.GitHub.Identity(ctx, code)
	if err != nil {
		// Provider unreachable and provider-rejected-code surface the same
		// way to the caller.
		log.Warn("github identity exchange failed", slog.Any("err", err))
		return LoginResult{}, ErrInvalidCode
	}
	if profile.Email == "" {
		log.Warn("github profile has no email", slog.String("login", profile.Login))
		return LoginResult{}, ErrInvalidCode
	}

	_, err = s.Store.Users().GetUserByEmail(ctx, profile.Email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		name := profile.Name
		if name == "" {
			name = profile.Login
		}

		hash, err := cryptox.HashPassword(profile.AccessToken)
		if err != nil {
			return LoginResult{}, fmt.Errorf("hash provider token: %w", err)
		}

		if _, err := s.Store.Users().CreateUser(ctx, domain.User{
			Email:        profile.Email,
			Name:         name,
			PasswordHash: hash,
			Provider:     domain.ProviderGitHub,
		}); err != nil {
			// A concurrent federated login for the same brand-new email can
			// win the insert; surface the conflict instead of retrying.
			if errors.Is(err, store.ErrAlreadyExists) {
				return LoginResult{}, ErrAlreadyExists
			}
			return LoginResult{}, err
		}
		log.Info("created federated user", slog.String("login", profile.Login))
	case err != nil:
		return LoginResult{}, err
	}

	return s.Login(ctx, profile.Email, profile.AccessToken)
}

// GetUser fetches a user by id.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// GetUserByEmail fetches a user by email.
func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

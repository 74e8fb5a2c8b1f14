package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/honeyshop/honeyshop-backend/internal/users"
	pkgauth "github.com/honeyshop/honeyshop-backend/pkg/auth"
	"github.com/honeyshop/honeyshop-backend/pkg/auth/session"
	"github.com/honeyshop/honeyshop-backend/pkg/config"
	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
	"github.com/honeyshop/honeyshop-backend/pkg/security"
)

const minPasswordLength = 8

// LoginResult carries everything a client needs after authentication.
// SessionID is the jti of the access token, which server-side state such
// as the cart registry is keyed by.
type LoginResult struct {
	SessionID    string
	AccessToken  string
	RefreshToken string
	User         users.User
}

// Service handles account registration and the session lifecycle.
type Service interface {
	Register(ctx context.Context, email, password string) (*users.User, error)
	RegisterAdmin(ctx context.Context, email, password string) (*users.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, accessID, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context, accessID string) error
}

type service struct {
	repo     users.Repository
	sessions *session.Manager
	jwtCfg   config.JWTConfig
	pwCfg    config.PasswordConfig
	now      func() time.Time
}

// NewService builds the auth service over the user repository and session manager.
func NewService(repo users.Repository, sessions *session.Manager, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	return &service{
		repo:     repo,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		pwCfg:    pwCfg,
		now:      time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, email, password string) (*users.User, error) {
	return s.register(ctx, email, password, false)
}

// RegisterAdmin creates an account with the admin flag set. The route layer
// only exposes it outside production.
func (s *service) RegisterAdmin(ctx context.Context, email, password string) (*users.User, error) {
	return s.register(ctx, email, password, true)
}

func (s *service) register(ctx context.Context, email, password string, isAdmin bool) (*users.User, error) {
	email = users.NormalizeEmail(email)
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := security.HashPassword(password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := users.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, invalidCredentials()
	}

	now := s.now()
	if err := s.repo.RecordSignIn(ctx, user.ID, now); err != nil {
		return nil, err
	}
	signedIn := now.UTC()
	user.LastSignIn = &signedIn

	return s.issue(ctx, *user)
}

// Refresh rotates the refresh token and mints a new access token for the
// same user.
func (s *service) Refresh(ctx context.Context, accessID, refreshToken string) (*LoginResult, error) {
	stored, err := s.sessions.UserFor(ctx, accessID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired, sign in again")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session")
	}

	newAccessID, newRefresh, err := s.sessions.Rotate(ctx, accessID, refreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID:  stored.ID,
		Email:   stored.Email,
		IsAdmin: stored.IsAdmin,
		JTI:     newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	user, err := s.repo.GetByID(ctx, stored.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		SessionID:    newAccessID,
		AccessToken:  token,
		RefreshToken: newRefresh,
		User:         *user,
	}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "access id is required")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func (s *service) issue(ctx context.Context, user users.User) (*LoginResult, error) {
	accessID := session.NewAccessID()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		JTI:     accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	refresh, err := s.sessions.Create(ctx, accessID, session.User{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session")
	}

	return &LoginResult{
		SessionID:    accessID,
		AccessToken:  token,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

func checkEmail(email string) error {
	if email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "email address is not valid")
	}
	return nil
}

func invalidCredentials() error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
}

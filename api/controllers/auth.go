package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/honeyshop/honeyshop-backend/api/middleware"
	"github.com/honeyshop/honeyshop-backend/api/responses"
	"github.com/honeyshop/honeyshop-backend/api/validators"
	authsvc "github.com/honeyshop/honeyshop-backend/internal/auth"
	"github.com/honeyshop/honeyshop-backend/internal/users"
	pkgauth "github.com/honeyshop/honeyshop-backend/pkg/auth"
	"github.com/honeyshop/honeyshop-backend/pkg/config"
	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
	"github.com/honeyshop/honeyshop-backend/pkg/logger"
)

func parseBearerToken(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	token := raw
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	return token, nil
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type userView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	IsAdmin    bool       `json:"is_admin"`
	CreatedAt  time.Time  `json:"created_at"`
	LastSignIn *time.Time `json:"last_sign_in,omitempty"`
}

type loginView struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         userView `json:"user"`
}

func viewOf(user users.User) userView {
	return userView{
		ID:         user.ID,
		Email:      user.Email,
		IsAdmin:    user.IsAdmin,
		CreatedAt:  user.CreatedAt,
		LastSignIn: user.LastSignIn,
	}
}

func Register(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return registerHandler(svc, logg, false)
}

// AdminRegister creates admin accounts. The router only mounts it outside
// production.
func AdminRegister(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return registerHandler(svc, logg, true)
}

func registerHandler(svc authsvc.Service, logg *logger.Logger, admin bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		register := svc.Register
		if admin {
			register = svc.RegisterAdmin
		}
		user, err := register(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, viewOf(*user))
	}
}

func Login(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, loginView{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			User:         viewOf(result.User),
		})
	}
}

// Refresh accepts the lapsed access token in the Authorization header and
// the refresh token in the body, and returns a fresh pair. The cart follows
// the rotated session id so it survives the refresh.
func Refresh(svc authsvc.Service, jwtCfg config.JWTConfig, carts cartRekeyer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		token, err := parseBearerToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		claims, err := pkgauth.ParseAccessTokenAllowExpired(jwtCfg, token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
			return
		}
		if claims.ID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
			return
		}

		var payload refreshRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Refresh(r.Context(), claims.ID, payload.RefreshToken)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if carts != nil {
			carts.Rekey(claims.ID, result.SessionID)
		}

		responses.WriteSuccess(w, loginView{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			User:         viewOf(result.User),
		})
	}
}

// Logout revokes the caller's session and drops their cart.
func Logout(svc authsvc.Service, carts cartDropper, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session context missing"))
			return
		}

		if err := svc.Logout(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if carts != nil {
			carts.Drop(sessionID)
		}

		responses.WriteSuccess(w, map[string]string{"status": "signed_out"})
	}
}

type cartDropper interface {
	Drop(sessionID string)
}

type cartRekeyer interface {
	Rekey(oldID, newID string)
}

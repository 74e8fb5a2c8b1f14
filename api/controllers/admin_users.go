package controllers

import (
	"net/http"

	"github.com/honeyshop/honeyshop-backend/api/responses"
	"github.com/honeyshop/honeyshop-backend/internal/users"
	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
	"github.com/honeyshop/honeyshop-backend/pkg/logger"
)

// AdminListUsers exposes the account list, password hashes excluded.
func AdminListUsers(repo users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user repository unavailable"))
			return
		}

		all, err := repo.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views := make([]userView, 0, len(all))
		for _, user := range all {
			views = append(views, viewOf(user))
		}

		responses.WriteSuccess(w, views)
	}
}

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/honeyshop/honeyshop-backend/api/middleware"
	"github.com/honeyshop/honeyshop-backend/api/responses"
	"github.com/honeyshop/honeyshop-backend/api/validators"
	cartpkg "github.com/honeyshop/honeyshop-backend/internal/cart"
	"github.com/honeyshop/honeyshop-backend/internal/inventory"
	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
	"github.com/honeyshop/honeyshop-backend/pkg/logger"
)

type addCartItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type setCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartView struct {
	Lines      []cartpkg.Line `json:"lines"`
	ItemCount  int            `json:"item_count"`
	TotalPrice float64        `json:"total_price"`
	Open       bool           `json:"open"`
}

func snapshotCart(carts *cartpkg.Registry, sessionID string) cartView {
	var view cartView
	carts.With(sessionID, func(c *cartpkg.Cart) {
		totals := c.Totals()
		view = cartView{
			Lines:      c.Lines(),
			ItemCount:  totals.ItemCount,
			TotalPrice: totals.TotalPrice,
			Open:       c.IsOpen(),
		}
	})
	return view
}

func sessionFor(r *http.Request) (string, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "session context missing")
	}
	return sessionID, nil
}

func GetCart(carts *cartpkg.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshotCart(carts, sessionID))
	}
}

// AddCartItem adds one unit of the item. Out-of-stock items are refused
// here, the same guard the storefront applies on its listing tiles.
func AddCartItem(carts *cartpkg.Registry, stock inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := stock.Get(r.Context(), payload.ItemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if item.Quantity == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeStateConflict, "item is out of stock"))
			return
		}

		carts.With(sessionID, func(c *cartpkg.Cart) {
			c.AddItem(*item)
		})

		responses.WriteSuccess(w, snapshotCart(carts, sessionID))
	}
}

func SetCartItemQuantity(carts *cartpkg.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID := chi.URLParam(r, "itemId")
		if itemID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		var payload setCartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carts.With(sessionID, func(c *cartpkg.Cart) {
			c.SetQuantity(itemID, payload.Quantity)
		})

		responses.WriteSuccess(w, snapshotCart(carts, sessionID))
	}
}

func RemoveCartItem(carts *cartpkg.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID := chi.URLParam(r, "itemId")
		if itemID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		carts.With(sessionID, func(c *cartpkg.Cart) {
			c.RemoveItem(itemID)
		})

		responses.WriteSuccess(w, snapshotCart(carts, sessionID))
	}
}

func ClearCart(carts *cartpkg.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carts.With(sessionID, func(c *cartpkg.Cart) {
			c.Clear()
		})

		responses.WriteSuccess(w, snapshotCart(carts, sessionID))
	}
}

func OpenCart(carts *cartpkg.Registry, logg *logger.Logger) http.HandlerFunc {
	return setCartOpen(carts, logg, true)
}

func CloseCart(carts *cartpkg.Registry, logg *logger.Logger) http.HandlerFunc {
	return setCartOpen(carts, logg, false)
}

func setCartOpen(carts *cartpkg.Registry, logg *logger.Logger, open bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFor(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carts.With(sessionID, func(c *cartpkg.Cart) {
			if open {
				c.Open()
			} else {
				c.Close()
			}
		})

		responses.WriteSuccess(w, snapshotCart(carts, sessionID))
	}
}

package inventory

import (
	"strings"

	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
)

// Item is one inventory record. JSON field names match the snapshot layout
// persisted by earlier versions of the storefront, so stored data migrates
// as-is.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Quantity    int     `json:"quantity"`
	Featured    bool    `json:"featured"`
}

// NewItemInput carries the caller-supplied fields for item creation. ID,
// rating, and the featured flag are assigned by the service.
type NewItemInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Quantity    int
}

func (in NewItemInput) check() error {
	if strings.TrimSpace(in.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "item category is required")
	}
	if in.Price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "item price must not be negative")
	}
	if in.Quantity < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "item quantity must not be negative")
	}
	return nil
}

// OrderLine names one item and the units a checkout wants to commit.
type OrderLine struct {
	ItemID   string
	Quantity int
}

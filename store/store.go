// Package store owns persistence for the marketplace collections. The
// interfaces here are the seam between HTTP handlers and MongoDB; tests
// substitute in-memory implementations.
package store

import (
	"context"
	"errors"

	"github.com/dwellio/property-marketplace/models"
)

// ErrNotFound is returned when a referenced document does not exist,
// including dangling references left behind by deletions.
var ErrNotFound = errors.New("not found")

type PropertyStore interface {
	Insert(ctx context.Context, property *models.Property) error
	FindByID(ctx context.Context, id string) (*models.Property, error)
	FindAll(ctx context.Context) ([]models.Property, error)
	FindBySeller(ctx context.Context, sellerID string) ([]models.Property, error)
	Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Property, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	// ToggleLike flips the caller's membership in the property's likes set
	// and reports the resulting set and whether the call liked (true) or
	// unliked (false). Implementations must apply the flip as a single
	// conditional update so concurrent toggles never duplicate an entry.
	ToggleLike(ctx context.Context, id, userID string) ([]string, bool, error)
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// ToggleWishlist flips the property's membership in the user's wishlist
	// with the same single-update contract as ToggleLike.
	ToggleWishlist(ctx context.Context, userID, propertyID string) ([]string, bool, error)
}

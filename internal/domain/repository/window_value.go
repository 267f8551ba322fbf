package repository

import (
	"context"

	"github.com/bnema/sidetabs/internal/domain/entity"
)

// WindowValueRepository persists string values scoped to a browser window.
// The session tab list is stored here under its configured key.
type WindowValueRepository interface {
	// Get returns the value for a key. found is false when nothing is stored.
	Get(ctx context.Context, windowID entity.WindowID, key string) (value string, found bool, err error)

	// Set saves or replaces the value for a key.
	Set(ctx context.Context, windowID entity.WindowID, key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, windowID entity.WindowID, key string) error

	// ListWindows returns the windows holding at least one value.
	ListWindows(ctx context.Context) ([]entity.WindowID, error)
}

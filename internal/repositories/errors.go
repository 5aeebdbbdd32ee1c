package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Services and
// handlers match on these with errors.Is to map outcomes to HTTP statuses.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCategoryInUse is returned when a category cannot be deleted because
	// menu items still reference it.
	ErrCategoryInUse = errors.New("category has menu items referencing it")
)

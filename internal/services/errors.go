package services

import "errors"

// Service-level sentinel errors. Handlers map these to HTTP statuses with
// errors.Is; the repository sentinels pass through the services unchanged.
var (
	// ErrInvalidCredentials is returned on login failure. It is deliberately
	// the same whether the username is unknown or the password mismatches.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for any malformed, expired or revoked
	// bearer token, or when the token's principal no longer exists.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrUsernameTaken is returned when registering with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrDuplicateCategoryName is returned when a category name collides,
	// case-insensitively, with an existing one.
	ErrDuplicateCategoryName = errors.New("category name already exists")
	// ErrInvalidGroup is returned when a category group is not FOOD or DRINKS.
	ErrInvalidGroup = errors.New("group must be FOOD or DRINKS")
	// ErrInvalidCategoryRef is returned when a menu item is created or
	// updated with a category_id that resolves to no category.
	ErrInvalidCategoryRef = errors.New("category reference does not exist")
	// ErrUnknownTag is returned when a menu item carries a tag outside the
	// fixed vocabulary.
	ErrUnknownTag = errors.New("unknown menu item tag")
	// ErrNegativePrice is returned when a menu item price is below zero.
	ErrNegativePrice = errors.New("prices must be non-negative")
)

package domain

import "errors"

// Auth and account errors.
var (
	ErrInvalidInput       = errors.New("all fields are required")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("no user found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("not authorized")
)

// Resource errors.
var (
	ErrInvalidID        = errors.New("invalid id")
	ErrIdeaNotFound     = errors.New("idea not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidPrice     = errors.New("price must be greater than 0")
	ErrInvalidQuantity  = errors.New("quantity must be greater than 0")
	ErrInvalidImage     = errors.New("invalid image format, provide base64 string or URL")
)

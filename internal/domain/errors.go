package domain

import "errors"

var (
	ErrRoomNumberRequired   = errors.New("room number is required")
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrProblemRequired      = errors.New("problem description is required")
	ErrTimeRequired         = errors.New("planned time is required")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrInvalidCategory      = errors.New("unknown category")
	ErrMenuItemNameRequired = errors.New("menu item name is required")
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrNotFound             = errors.New("record not found")
	ErrInvalidStatus        = errors.New("unknown request status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
)

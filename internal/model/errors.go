package model

import "errors"

var (
	// ErrAuth is returned for bad credentials and password hashing failures.
	ErrAuth = errors.New("authentication failed")
	// ErrNotFound is returned when a product does not exist.
	ErrNotFound = errors.New("item not found")
	// ErrInsufficientInventory is returned when a sale exceeds the stock on hand.
	ErrInsufficientInventory = errors.New("insufficient inventory")
	// ErrInvalidInput is returned for rejected arguments such as a taken username.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDatabase wraps I/O and encoding failures while persisting state.
	ErrDatabase = errors.New("database error")
)

package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrMissingID          = errors.New("missing id")
	ErrMissingSymbol      = errors.New("missing symbol")
	ErrInvalidAction      = errors.New("invalid action")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrAccountExists      = errors.New("admin account already exists")
)

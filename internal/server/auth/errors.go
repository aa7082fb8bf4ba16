package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned by Register for an already registered email
	ErrEmailTaken = errors.New("email already registered")

	// ErrUnauthenticated is returned for any token that does not resolve to a live user
	ErrUnauthenticated = errors.New("not authenticated")
)

package auth

import "errors"

var (
	// ErrInvalidCredentials indicates a failed login. Unknown users and wrong
	// passwords are reported identically.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrMissingToken indicates that no bearer token was presented.
	ErrMissingToken = errors.New("no token provided")

	// ErrInvalidToken indicates a token that failed verification. The wrapped
	// message carries the reason.
	ErrInvalidToken = errors.New("invalid token")
)

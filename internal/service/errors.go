// Package service holds the like and tag-vote engines, the listing service and
// the game catalogue. Callers pass the acting user explicitly.
package service

import "errors"

var (
	// ErrUnauthorized means no authenticated user was supplied.
	ErrUnauthorized = errors.New("access unauthorized")
	// ErrNotFound means a referenced game, tag or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the user may not act on the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput means the request payload was rejected.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict means a uniqueness violation survived the retry path.
	ErrConflict = errors.New("conflicting concurrent update")

	// errRetry aborts the current attempt so the decision is made again.
	errRetry = errors.New("retry")
)

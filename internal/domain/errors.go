package domain

import "errors"

// Errors are terminal for the operation in progress; none are retried.
var (
	// ErrInvalidWordlist reports a malformed or too-small wordlist, or a separator collision.
	ErrInvalidWordlist = errors.New("invalid wordlist")
	// ErrInvalidRequest reports a bad word count, entropy target or bound.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRandomUnavailable reports that the secure entropy source could not be read.
	ErrRandomUnavailable = errors.New("secure random source unavailable")
)

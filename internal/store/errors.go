package store

import "errors"

var (
	ErrTokenNotFound = errors.New("no stored credential")
	ErrJobNotFound   = errors.New("job not found in cache")
)

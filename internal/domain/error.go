package domain

import "errors"

var (
	// Common domain errors
	ErrCityNotFound        = errors.New("city not found")
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrBadResponse         = errors.New("malformed provider response")
	ErrInvalidArgument     = errors.New("invalid argument")
)

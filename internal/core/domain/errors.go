package domain

import "errors"

var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrAddressNotFound  = errors.New("could not geocode address")
	ErrMissingLocation  = errors.New("address or coordinates required")
)

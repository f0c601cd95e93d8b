package domain

import "errors"

var (
	// ErrProductNotFound is returned when no data source has the product
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidBarcode is returned for barcodes that are not 8-14 digit numeric strings
	ErrInvalidBarcode = errors.New("invalid barcode format")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRemoteUnavailable is returned when an Open Food Facts request fails
	ErrRemoteUnavailable = errors.New("remote product database request failed")
)

package memutils

import "github.com/pkg/errors"

var (
	// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
	PowerOfTwoError error = errors.New("number must be a power of two")
	// ErrPoolTooSmall is returned when a pool is created over a range that cannot hold an order hierarchy
	ErrPoolTooSmall error = errors.New("pool must span more than two pages")
	// ErrInvalidParameter is returned when a required parameter is missing or out of range
	ErrInvalidParameter error = errors.New("invalid parameter value")
)

// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("service unavailable")
	ErrUpstream     = errors.New("upstream request failed")
)

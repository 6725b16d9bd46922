// errors.go
package resloc

import (
	"errors"
	"fmt"

	"github.com/maketools/resloc/pkg/registry"
)

var (
	// ErrResourceNotFound indicates no directory on the search path
	// provides the requested resource
	ErrResourceNotFound = errors.New("resource not found")

	// ErrPackNotFound indicates the pack is not in the cached index
	ErrPackNotFound = registry.ErrNotFound
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Name string // Resource or pack name if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// SPDX-License-Identifier: MIT

package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod - no provider is registered under the requested
	// operation-method name.
	ErrUnknownMethod = errors.New("provider: unknown operation method")

	// ErrOperationNotFound - no operation path exists between the given
	// coordinate reference systems.
	ErrOperationNotFound = errors.New("provider: no operation found between the given reference systems")

	// ErrIllegalArgument - an argument outside the method's accepted set,
	// such as a dimensionality other than 2 or 3.
	ErrIllegalArgument = errors.New("provider: illegal argument")
)

// providerErrorf prefixes err with the operation tag, preserving sentinels
// for errors.Is.
func providerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

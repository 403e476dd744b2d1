// SPDX-License-Identifier: MIT

package mgrs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCRS - the encoder cannot classify the source CRS.
	ErrUnsupportedCRS = errors.New("mgrs: unsupported coordinate reference system")

	// ErrIllegalDigits - the digit count is outside 0…5.
	ErrIllegalDigits = errors.New("mgrs: digits must be between 0 and 5")
)

// mgrsErrorf prefixes err with the operation tag, preserving sentinels.
func mgrsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

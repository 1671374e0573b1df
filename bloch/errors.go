// SPDX-License-Identifier: MIT

package bloch

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroVector is returned when a point or axis has zero length and
	// therefore no direction.
	ErrZeroVector = errors.New("bloch: zero vector has no direction")

	// ErrAmplitudeOutOfRange is returned when a real amplitude lies outside [-1, 1].
	ErrAmplitudeOutOfRange = errors.New("bloch: amplitude outside [-1, 1]")

	// ErrInvalidField is returned when a state input field does not parse as a number.
	ErrInvalidField = errors.New("bloch: invalid input field")
)

// Operation tags for error wrapping.
const (
	opPointToAngles        = "PointToAngles"
	opAnglesFromAmplitudes = "AnglesFromAmplitudes"
	opRotatePoint          = "RotatePoint"
	opNewArc               = "NewArc"
	opParseFields          = "ParseFields"
)

// blochErrorf wraps err with an operation tag; err must be non-nil.
func blochErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

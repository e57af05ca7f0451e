package curb

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by [Initialize] for lengths that cannot
	// describe a blockface.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidAdjustment marks edits that would break length conservation
	// or produce a segment without positive length.
	ErrInvalidAdjustment = errors.New("invalid adjustment")

	// ErrInsufficientSpace is the [ErrInvalidAdjustment] reported when
	// neither a segment nor its left neighbour can donate the length for a
	// new segment.
	ErrInsufficientSpace = fmt.Errorf("insufficient space to create new segment: %w", ErrInvalidAdjustment)

	// ErrIndexOutOfRange marks actions that reference a segment that doesn't
	// exist.
	ErrIndexOutOfRange = errors.New("segment index out of range")

	// ErrProjection marks a segment that couldn't be placed on a path.
	ErrProjection = errors.New("projection failure")
)

package geom

import "errors"

// Sentinel errors for geom operations.
var (
	// ErrLengthMismatch indicates paired point slices of different lengths.
	ErrLengthMismatch = errors.New("geom: point slices must have equal length")
	// ErrNoReferencePoints indicates an empty reference set for a nearest lookup.
	ErrNoReferencePoints = errors.New("geom: reference point set must be non-empty")
	// ErrBadK indicates a neighbour count outside [1, len(refs)].
	ErrBadK = errors.New("geom: k must be between 1 and the number of reference points")
)

// Package errors defines all exported error sentinels for the fkshash library.
//
// This is the single source of truth for error values. Both the top-level
// fkshash package and internal packages import from here, ensuring errors.Is
// checks work across package boundaries.
package errors

import "errors"

// Construction errors
var (
	ErrInvalidBucketCount = errors.New("fkshash: bucket count must be at least 1")
	ErrInvalidMaxAttempts = errors.New("fkshash: max attempts must be at least 1")
)

// Insert errors
var (
	ErrDuplicateKey = errors.New("fkshash: duplicate key")

	// ErrBuildFailed is returned when the bounded randomized search exhausts
	// its attempt budget without finding a collision-free descriptor for a
	// bucket. The table is left unchanged; callers may retry the insert with
	// a larger attempt budget (see WithMaxAttempts).
	ErrBuildFailed = errors.New("fkshash: secondary table build failed")
)

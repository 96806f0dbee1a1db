package selection

import "errors"

var (
	// ErrInvalidRank is returned by Select when k is outside [1, len(xs)].
	ErrInvalidRank error = errors.New("selection: k out of range")
	// ErrUnknownPolicy is returned by Select when policy is outside {1..6}.
	ErrUnknownPolicy error = errors.New("selection: unknown policy")
)

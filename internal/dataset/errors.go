package dataset

import "errors"

// Domain-specific errors for the dataset package.
var (
	// ErrNoProfile is returned when an ingest request carries neither an
	// inline profile nor a profile path.
	ErrNoProfile = errors.New("no dataset profile provided")
)

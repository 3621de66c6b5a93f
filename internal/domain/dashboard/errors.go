package dashboard

import "errors"

var (
	// ErrPartialResults signals that one or more constituent fetches failed
	// and their parts of the snapshot were substituted with empty
	// collections. The snapshot alongside it is still usable.
	ErrPartialResults = errors.New("some dashboard sources failed")

	// ErrAllSourcesFailed signals that every constituent fetch failed. The
	// previously accepted snapshot, if any, remains in place.
	ErrAllSourcesFailed = errors.New("all dashboard sources failed")

	ErrNoSnapshot = errors.New("no dashboard snapshot available")
)

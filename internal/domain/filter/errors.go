package filter

import "errors"

var (
	ErrStoreUnavailable = errors.New("filter store unavailable")
)

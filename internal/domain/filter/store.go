package filter

import "context"

// KeyValueStore is the durable storage capability filter persistence is built
// on. Keys are fully namespaced by the caller; implementations never share
// state across keys.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value under the key, replacing any previous value
	Set(ctx context.Context, key string, value string) error
}

// Persistence stores and restores the non-temporal part of a filter state,
// scoped per identity. The date range is deliberately excluded so every
// session starts on the current work week.
type Persistence interface {
	// Save stores the project/employee selections for the identity
	Save(ctx context.Context, identityID string, state State) error

	// Load returns the persisted selections, or nil when nothing usable is
	// stored; corrupt data is treated as "no persisted state", not an error
	Load(ctx context.Context, identityID string) (*PersistedSelections, error)
}

// PersistedSelections is the durable subset of a filter state
type PersistedSelections struct {
	Projects  Selection `json:"projects"`
	Employees Selection `json:"employees"`
}

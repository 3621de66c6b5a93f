package filter

import (
	"context"
	"encoding/json"

	"github.com/sriram315/project-dashboard-go/internal/domain/filter"
)

type persistenceImpl struct {
	store filter.KeyValueStore
}

// NewPersistence returns a filter.Persistence over the given key-value store.
// Every key it reads or writes is scoped to one identity; there is no global
// key, so one viewer's filters can never leak into another's session.
func NewPersistence(store filter.KeyValueStore) filter.Persistence {
	return &persistenceImpl{store: store}
}

func storageKey(identityID string) string {
	return "filters:" + identityID
}

// Save stores only the project/employee selections. Dates are excluded so
// every session starts scoped to the current work week.
func (p *persistenceImpl) Save(ctx context.Context, identityID string, state filter.State) error {
	payload := filter.PersistedSelections{
		Projects:  state.Projects,
		Employees: state.Employees,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.store.Set(ctx, storageKey(identityID), string(data))
}

// Load returns the persisted selections. A missing key, a store error, or
// corrupt stored data all read as "no persisted state".
func (p *persistenceImpl) Load(ctx context.Context, identityID string) (*filter.PersistedSelections, error) {
	raw, ok, err := p.store.Get(ctx, storageKey(identityID))
	if err != nil || !ok {
		return nil, nil
	}

	var payload filter.PersistedSelections
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, nil
	}
	return &payload, nil
}

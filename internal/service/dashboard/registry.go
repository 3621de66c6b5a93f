package dashboard

import (
	"sync"

	"github.com/sriram315/project-dashboard-go/internal/domain/user"
)

// registry hands out one session per identity. A returning identity reuses
// its session; a role change tears the old one down and starts fresh, so one
// identity's filters never bleed into another's view.
type registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	build    func(user.Identity) *Session
}

func newRegistry(build func(user.Identity) *Session) *registry {
	return &registry{
		sessions: make(map[string]*Session),
		build:    build,
	}
}

func (r *registry) session(identity user.Identity) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.sessions[identity.ID]; ok && existing.identity == identity {
		return existing
	}
	sess := r.build(identity)
	r.sessions[identity.ID] = sess
	return sess
}

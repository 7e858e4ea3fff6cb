package screening

import (
	"sync"
)

// sessionRegistry живые диалоги, только в памяти.
// В БД попадают лишь завершённые сессии
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// session даёт монопольный доступ к диалогу на время хода
type session struct {
	mu     sync.Mutex
	dialog Dialog
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: map[string]*session{},
	}
}

func (r *sessionRegistry) add(d Dialog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[d.ID] = &session{dialog: d}
}

func (r *sessionRegistry) get(id string) *session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

func (r *sessionRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *sessionRegistry) ids() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		result = append(result, id)
	}
	return result
}

package cache

import "time"

// View names. Mutations to the user table must clear all three, since
// a single row change can alter any page's membership or count.
const (
	UserByID  = "user"
	UserList  = "users"
	UserPages = "users_page"
)

// Manager bundles the named cache views behind one handle so services
// take a single dependency instead of three stores.
type Manager struct {
	views map[string]*Store
}

// NewManager builds the three user views sharing one TTL. Only the
// by-id view is size-capped; the collection views hold few keys.
func NewManager(ttl time.Duration, byIDMax int) *Manager {
	return &Manager{
		views: map[string]*Store{
			UserByID:  NewStore(ttl, byIDMax),
			UserList:  NewStore(ttl, 0),
			UserPages: NewStore(ttl, 0),
		},
	}
}

// Get reads key from the named view. Unknown views behave as a miss.
func (m *Manager) Get(view, key string) ([]byte, bool) {
	s, ok := m.views[view]
	if !ok {
		return nil, false
	}
	return s.Get(key)
}

// Put writes key into the named view. Unknown views are ignored.
func (m *Manager) Put(view, key string, value []byte) {
	if s, ok := m.views[view]; ok {
		s.Put(key, value)
	}
}

// EvictKey removes one entry from the named view.
func (m *Manager) EvictKey(view, key string) {
	if s, ok := m.views[view]; ok {
		s.EvictKey(key)
	}
}

// EvictAll clears the named view.
func (m *Manager) EvictAll(view string) {
	if s, ok := m.views[view]; ok {
		s.EvictAll()
	}
}

// EvictEverything clears every view. Called after any user mutation.
func (m *Manager) EvictEverything() {
	for _, s := range m.views {
		s.EvictAll()
	}
}

// Len reports the resident entry count of the named view.
func (m *Manager) Len(view string) int {
	if s, ok := m.views[view]; ok {
		return s.Len()
	}
	return 0
}

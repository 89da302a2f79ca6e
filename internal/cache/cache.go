package cache

import (
	"container/list"
	"sync"
	"time"
)

// Store is one named cache view holding JSON payloads keyed by string.
// Entries expire a fixed TTL after insertion (checked lazily on read);
// when maxEntries is set, inserting past the cap evicts the
// least-recently-inserted entry. All methods are safe for concurrent
// use and individually atomic.
type Store struct {
	mu         sync.RWMutex
	ttl        time.Duration
	maxEntries int // 0 means unbounded
	entries    map[string]*list.Element
	order      *list.List // oldest insertion at the front

	now func() time.Time // overridable in tests
}

type entry struct {
	key        string
	value      []byte
	insertedAt time.Time
}

// NewStore creates a cache view. maxEntries of 0 disables the size cap.
func NewStore(ttl time.Duration, maxEntries int) *Store {
	return &Store{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		now:        time.Now,
	}
}

// Get returns the cached payload, or false when the key is absent or
// its TTL has elapsed. Expired entries are left for Put or EvictAll to
// reap; they still count toward the cap, which only ever shrinks it.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	el, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	e := el.Value.(*entry)
	if s.now().Sub(e.insertedAt) >= s.ttl {
		return nil, false
	}
	return e.value, true
}

// Put inserts or refreshes a payload. A refresh moves the key to the
// back of the eviction order. When the insert overflows maxEntries the
// oldest entry is evicted.
func (s *Store) Put(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		e := el.Value.(*entry)
		e.value = value
		e.insertedAt = s.now()
		s.order.MoveToBack(el)
		return
	}

	s.entries[key] = s.order.PushBack(&entry{key: key, value: value, insertedAt: s.now()})

	if s.maxEntries > 0 && s.order.Len() > s.maxEntries {
		oldest := s.order.Front()
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry).key)
	}
}

// EvictKey removes one entry if present.
func (s *Store) EvictKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[key]; ok {
		s.order.Remove(el)
		delete(s.entries, key)
	}
}

// EvictAll clears the view.
func (s *Store) EvictAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*list.Element)
	s.order.Init()
}

// Len reports the number of resident entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order.Len()
}

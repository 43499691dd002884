package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"yatrat/planner"
)

type StoredItinerary struct {
	ID        string
	Itinerary planner.Itinerary
	CreatedAt time.Time
}

// ItineraryStore keeps generated itineraries in memory long enough for the
// PDF download link to be used. Entries expire after the configured TTL;
// nothing survives a restart, which is the intended behavior — the store is
// an ephemeral cache, not a database.
type ItineraryStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]StoredItinerary
	now   func() time.Time
}

func NewItineraryStore(ttl time.Duration) *ItineraryStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ItineraryStore{
		ttl:   ttl,
		items: make(map[string]StoredItinerary),
		now:   time.Now,
	}
}

// Put stores the itinerary and returns its download id. Expired entries are
// swept opportunistically on write.
func (s *ItineraryStore) Put(it planner.Itinerary) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, stored := range s.items {
		if now.Sub(stored.CreatedAt) > s.ttl {
			delete(s.items, id)
		}
	}

	id := uuid.New().String()
	s.items[id] = StoredItinerary{ID: id, Itinerary: it, CreatedAt: now}
	return id
}

func (s *ItineraryStore) Get(id string) (StoredItinerary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.items[id]
	if !ok || s.now().Sub(stored.CreatedAt) > s.ttl {
		return StoredItinerary{}, false
	}
	return stored, true
}

func (s *ItineraryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

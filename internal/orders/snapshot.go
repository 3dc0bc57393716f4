package orders

import (
	"sync"

	"github.com/shopnobd/backoffice/internal/models"
)

// Snapshot holds the last fetched order list for local filtering. Each fetch
// begins by taking a monotonic sequence token; a response may only be
// committed while its token is still the latest, so a slow fetch can never
// overwrite the result of one issued after it.
type Snapshot struct {
	mu     sync.Mutex
	seq    uint64
	orders []models.Order
}

// Begin registers a new fetch and returns its token.
func (s *Snapshot) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Commit stores the fetched orders if token is still current. It reports
// whether the snapshot was updated.
func (s *Snapshot) Commit(token uint64, orders []models.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return false
	}
	s.orders = orders
	return true
}

// Orders returns the last committed snapshot.
func (s *Snapshot) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders
}

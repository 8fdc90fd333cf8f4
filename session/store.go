package session

import (
	"sync"

	"shopwidget.GO/model"
)

// Snapshot is a consistent read of one in-progress order. Pages render from
// a Snapshot, never from the live store.
type Snapshot struct {
	Product     *model.Candidate   `json:"product,omitempty"`
	Quantity    int                `json:"quantity"`
	Contact     *model.ContactForm `json:"contact,omitempty"`
	LastQuery   string             `json:"last_query"`
	LastResults []model.Candidate  `json:"last_results"`
}

// Store holds the single mutable order session for one widget instance.
// It is injected into every page handler rather than held as package state,
// so independent embedded widgets never collide. All operations are atomic;
// a reader always observes the most recent completed write.
type Store struct {
	mu          sync.Mutex
	product     *model.Candidate
	quantity    int
	contact     *model.ContactForm
	lastQuery   string
	lastResults []model.Candidate
}

// NewStore returns an empty session: no product, quantity 1, no contact.
func NewStore() *Store {
	return &Store{quantity: 1}
}

// SetProduct replaces the selected product. Quantity and contact are left
// untouched; clamping quantity to the new product is the checkout page's job.
func (s *Store) SetProduct(c model.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = &c
}

// SetQuantity stores any positive quantity. The store trusts the caller;
// the [1, onHand] bound is enforced at the checkout edge.
func (s *Store) SetQuantity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	s.quantity = n
}

// SetContact replaces the contact block wholesale. A resubmission overwrites
// all fields; there is no partial merge.
func (s *Store) SetContact(f model.ContactForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contact = &f
}

// SetSearchContext replaces query and results together so a reader never
// sees a query paired with stale results.
func (s *Store) SetSearchContext(query string, results []model.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = query
	s.lastResults = append([]model.Candidate(nil), results...)
}

// FindResult looks up a candidate by id in the last search results.
func (s *Store) FindResult(id string) (model.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.lastResults {
		if c.ID == id {
			return c, true
		}
	}
	return model.Candidate{}, false
}

// ResetOrder clears product, contact and quantity but keeps the search
// context, so returning to the search page does not discard the last search.
func (s *Store) ResetOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = nil
	s.quantity = 1
	s.contact = nil
}

// ResetAll clears everything including the search context. Used only on a
// full session restart, not on the confirmation path.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = nil
	s.quantity = 1
	s.contact = nil
	s.lastQuery = ""
	s.lastResults = nil
}

// Snapshot returns a copy of the session consistent with the most recent
// completed write.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Quantity:    s.quantity,
		LastQuery:   s.lastQuery,
		LastResults: append([]model.Candidate(nil), s.lastResults...),
	}
	if s.product != nil {
		p := *s.product
		snap.Product = &p
	}
	if s.contact != nil {
		c := *s.contact
		snap.Contact = &c
	}
	return snap
}

package flow

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"shopwidget.GO/model"
	"shopwidget.GO/search"
	"shopwidget.GO/session"
)

// State names one page of the order workflow.
type State string

const (
	StateSearch       State = "search"
	StateCheckout     State = "checkout"
	StateReview       State = "review"
	StateConfirmation State = "confirmation"
)

// Path returns the widget route for a state.
func (s State) Path() string {
	switch s {
	case StateCheckout:
		return "/checkout"
	case StateReview:
		return "/review"
	case StateConfirmation:
		return "/confirmation"
	default:
		return "/"
	}
}

var (
	// ErrNoProduct: checkout or later entered with no resolvable product.
	ErrNoProduct = errors.New("flow: no product selected")
	// ErrIncompleteOrder: review entered without product and contact.
	ErrIncompleteOrder = errors.New("flow: order data incomplete")
	// ErrNoConfirmation: confirmation entered without a pending record.
	ErrNoConfirmation = errors.New("flow: no pending confirmation")
	// ErrQuantityRange: requested quantity outside [1, on hand].
	ErrQuantityRange = errors.New("flow: quantity out of range")
)

// EnterFunc observes state entries (scroll-to-top notifications, logging).
type EnterFunc func(state State, path string)

// Controller drives one session through Search → Checkout → Review →
// Confirmation. Guards are all-or-nothing: either the full required data is
// present and the transition proceeds, or nothing happens and the caller
// redirects to the search page.
type Controller struct {
	store    *session.Store
	searcher search.Searcher

	mu      sync.Mutex
	state   State
	pending *model.ConfirmationRecord
	gen     uint64
	onEnter EnterFunc
}

func NewController(store *session.Store, searcher search.Searcher) *Controller {
	return &Controller{store: store, searcher: searcher, state: StateSearch}
}

// OnEnter registers the state-entry observer. At most one; nil clears it.
func (c *Controller) OnEnter(fn EnterFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEnter = fn
}

// State returns the current workflow state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Store exposes the underlying session for read-only snapshots.
func (c *Controller) Store() *session.Store {
	return c.store
}

func (c *Controller) enter(s State) {
	c.state = s
	if c.onEnter != nil {
		c.onEnter(s, s.Path())
	}
}

// --- Search ---

// BeginSearch marks a new in-flight search and returns its generation.
// Responses are applied only while their generation is still current, so a
// slow response for an abandoned query can never clobber newer results.
func (c *Controller) BeginSearch(upc string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

// ApplyResults ranks and stores a search response. Returns false when the
// response is stale (superseded by a newer BeginSearch) and was discarded.
func (c *Controller) ApplyResults(gen uint64, upc string, hits []model.Candidate) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.store.SetSearchContext(upc, search.Rank(hits))
	return true
}

// Search runs the full search round trip. An empty UPC clears the search
// context (the clear-search action). A backend failure falls back to an
// empty result set and returns the error for the caller's error affordance;
// the store is still updated so the page never renders stale hits.
func (c *Controller) Search(ctx context.Context, upc string, near *model.GeoPoint) ([]model.Candidate, error) {
	if upc == "" {
		c.mu.Lock()
		c.gen++
		c.store.SetSearchContext("", nil)
		c.mu.Unlock()
		return []model.Candidate{}, nil
	}

	gen := c.BeginSearch(upc)
	hits, err := c.searcher.Search(ctx, upc, near)
	if err != nil {
		c.ApplyResults(gen, upc, nil)
		return []model.Candidate{}, err
	}
	if !c.ApplyResults(gen, upc, hits) {
		return []model.Candidate{}, nil
	}
	return c.store.Snapshot().LastResults, nil
}

// EnterSearch moves back to the search page. The search context survives;
// only entering confirmation resets order data.
func (c *Controller) EnterSearch() session.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enter(StateSearch)
	return c.store.Snapshot()
}

// --- Checkout ---

// SelectCandidate is the Search → Checkout transition: the picked result is
// persisted to the session and the quantity clamped into [1, on hand].
func (c *Controller) SelectCandidate(id string) (model.Candidate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cand, ok := c.store.FindResult(id)
	if !ok {
		return model.Candidate{}, ErrNoProduct
	}
	c.store.SetProduct(cand)
	if q := c.store.Snapshot().Quantity; q > cand.MaxQuantity() {
		c.store.SetQuantity(cand.MaxQuantity())
	}
	c.enter(StateCheckout)
	return cand, nil
}

// EnterCheckout resolves the checkout page's product: the navigation payload
// (candidate id) wins on first entry and is persisted immediately; otherwise
// the session's product is used. No product from either source → ErrNoProduct.
func (c *Controller) EnterCheckout(id string) (session.Snapshot, error) {
	if id != "" {
		if _, err := c.SelectCandidate(id); err == nil {
			return c.store.Snapshot(), nil
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.store.Snapshot()
	if snap.Product == nil {
		return session.Snapshot{}, ErrNoProduct
	}
	c.enter(StateCheckout)
	return snap, nil
}

// SubmitCheckout validates the contact form and quantity, persists both and
// moves to Review. Field errors abort the transition with nothing stored.
func (c *Controller) SubmitCheckout(form model.ContactForm, quantity int) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.store.Snapshot()
	if snap.Product == nil {
		return nil, ErrNoProduct
	}

	form.Phone = NormalizePhone(form.Phone)
	errs := ValidateContact(form)
	if quantity < 1 || quantity > snap.Product.MaxQuantity() {
		errs["quantity"] = fmt.Sprintf("quantity must be between 1 and %d", snap.Product.MaxQuantity())
	}
	if len(errs) > 0 {
		return errs, nil
	}

	c.store.SetQuantity(quantity)
	c.store.SetContact(form)
	c.enter(StateReview)
	return nil, nil
}

// --- Review ---

// EnterReview guards the review page: both product and contact must be in
// the session, otherwise the caller redirects to Search with no partial
// render.
func (c *Controller) EnterReview() (session.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.store.Snapshot()
	if snap.Product == nil || snap.Contact == nil {
		c.enter(StateSearch)
		return session.Snapshot{}, ErrIncompleteOrder
	}
	c.enter(StateReview)
	return snap, nil
}

// Confirm is the Review → Confirmation transition: a 6-digit order id is
// generated and the record stashed for the confirmation page. The session is
// not touched here; EnterConfirmation resets it.
func (c *Controller) Confirm() (model.ConfirmationRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.store.Snapshot()
	if snap.Product == nil || snap.Contact == nil {
		return model.ConfirmationRecord{}, ErrIncompleteOrder
	}
	rec := model.ConfirmationRecord{
		OrderID:  newOrderID(),
		Product:  *snap.Product,
		Quantity: snap.Quantity,
		Contact:  *snap.Contact,
	}
	c.pending = &rec
	return rec, nil
}

// --- Confirmation ---

// EnterConfirmation consumes the one-shot confirmation record and resets the
// order (search context survives). A reload finds no record and redirects.
func (c *Controller) EnterConfirmation() (model.ConfirmationRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return model.ConfirmationRecord{}, ErrNoConfirmation
	}
	rec := *c.pending
	c.pending = nil
	c.store.ResetOrder()
	c.enter(StateConfirmation)
	return rec, nil
}

func newOrderID() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

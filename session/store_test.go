package session

import (
	"testing"

	"shopwidget.GO/model"
)

func candidate(id string, onHand int) model.Candidate {
	return model.Candidate{ID: id, OnHandQuantity: &onHand}
}

func TestNewStore_Empty(t *testing.T) {
	snap := NewStore().Snapshot()
	if snap.Product != nil || snap.Contact != nil {
		t.Error("new store should have no product or contact")
	}
	if snap.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", snap.Quantity)
	}
	if snap.LastQuery != "" || len(snap.LastResults) != 0 {
		t.Error("new store should have empty search context")
	}
}

func TestSetProduct_LeavesQuantityAndContact(t *testing.T) {
	s := NewStore()
	s.SetQuantity(3)
	s.SetContact(model.ContactForm{FirstName: "A"})
	s.SetProduct(candidate("p1", 5))

	snap := s.Snapshot()
	if snap.Product == nil || snap.Product.ID != "p1" {
		t.Fatal("product not set")
	}
	if snap.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", snap.Quantity)
	}
	if snap.Contact == nil || snap.Contact.FirstName != "A" {
		t.Error("contact should be untouched")
	}
}

func TestSetQuantity_FloorsAtOne(t *testing.T) {
	s := NewStore()
	s.SetQuantity(0)
	if got := s.Snapshot().Quantity; got != 1 {
		t.Errorf("quantity = %d, want 1", got)
	}
	s.SetQuantity(-4)
	if got := s.Snapshot().Quantity; got != 1 {
		t.Errorf("quantity = %d, want 1", got)
	}
}

func TestSetContact_ReplacesWholesale(t *testing.T) {
	s := NewStore()
	s.SetContact(model.ContactForm{FirstName: "A", Email: "a@b.com"})
	s.SetContact(model.ContactForm{FirstName: "B"})
	snap := s.Snapshot()
	if snap.Contact.FirstName != "B" {
		t.Errorf("FirstName = %q, want B", snap.Contact.FirstName)
	}
	if snap.Contact.Email != "" {
		t.Errorf("Email = %q, want empty (no partial merge)", snap.Contact.Email)
	}
}

func TestSetSearchContext_Atomic(t *testing.T) {
	s := NewStore()
	s.SetSearchContext("012345678905", []model.Candidate{candidate("p1", 1)})
	snap := s.Snapshot()
	if snap.LastQuery != "012345678905" || len(snap.LastResults) != 1 {
		t.Fatalf("context = %q/%d results", snap.LastQuery, len(snap.LastResults))
	}
}

func TestFindResult(t *testing.T) {
	s := NewStore()
	s.SetSearchContext("u", []model.Candidate{candidate("a", 1), candidate("b", 2)})
	if _, ok := s.FindResult("b"); !ok {
		t.Error("FindResult(b) = false, want true")
	}
	if _, ok := s.FindResult("zzz"); ok {
		t.Error("FindResult(zzz) = true, want false")
	}
}

func TestResetOrder_KeepsSearchContext(t *testing.T) {
	s := NewStore()
	s.SetSearchContext("q", []model.Candidate{candidate("p1", 2)})
	s.SetProduct(candidate("p1", 2))
	s.SetQuantity(2)
	s.SetContact(model.ContactForm{FirstName: "A"})

	s.ResetOrder()
	snap := s.Snapshot()
	if snap.Product != nil || snap.Contact != nil {
		t.Error("ResetOrder should clear product and contact")
	}
	if snap.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", snap.Quantity)
	}
	if snap.LastQuery != "q" || len(snap.LastResults) != 1 {
		t.Error("ResetOrder must keep search context")
	}
}

func TestResetOrder_Idempotent(t *testing.T) {
	s := NewStore()
	s.SetSearchContext("q", []model.Candidate{candidate("p1", 2)})
	s.SetProduct(candidate("p1", 2))
	s.SetContact(model.ContactForm{FirstName: "A"})

	s.ResetOrder()
	first := s.Snapshot()
	s.ResetOrder()
	second := s.Snapshot()

	if first.Product != second.Product || first.Quantity != second.Quantity {
		t.Error("double ResetOrder changed the session shape")
	}
	if second.LastQuery != "q" {
		t.Error("second ResetOrder cleared the search context")
	}
}

func TestResetAll_ClearsEverything(t *testing.T) {
	s := NewStore()
	s.SetSearchContext("q", []model.Candidate{candidate("p1", 2)})
	s.SetProduct(candidate("p1", 2))
	s.ResetAll()
	snap := s.Snapshot()
	if snap.Product != nil || snap.LastQuery != "" || len(snap.LastResults) != 0 {
		t.Error("ResetAll should clear the search context too")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := NewStore()
	s.SetSearchContext("q", []model.Candidate{candidate("p1", 2)})
	snap := s.Snapshot()
	snap.LastResults[0].ID = "mutated"
	if got, _ := s.FindResult("p1"); got.ID != "p1" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

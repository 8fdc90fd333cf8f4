package model

// ContactForm is the customer contact block captured on the checkout page.
// Email is the only optional field. Phone is normalized to DDD-DDD-DDDD
// before it is stored.
type ContactForm struct {
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
	State     string `json:"state" form:"state"`
}

// ConfirmationRecord is the one-shot payload handed to the confirmation
// page. It is never stored in the session; a reload loses it.
type ConfirmationRecord struct {
	OrderID  string      `json:"order_id"`
	Product  Candidate   `json:"product"`
	Quantity int         `json:"quantity"`
	Contact  ContactForm `json:"contact"`
}

// Total returns quantity * unit price (0 when the price is absent).
func (r *ConfirmationRecord) Total() float64 {
	return r.Product.Price() * float64(r.Quantity)
}

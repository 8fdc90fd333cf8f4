package flow

import (
	"testing"

	"shopwidget.GO/model"
)

func TestNormalizePhone_Progressive(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "123-4"},
		{"123456", "123-456"},
		{"1234567", "123-456-7"},
		{"1234567890", "123-456-7890"},
		{"123-456-7890", "123-456-7890"},
		{"(123) 456-7890", "123-456-7890"},
		{"12345678901234", "123-456-7890"},
		{"abc123def456", "123-456"},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.in); got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func validForm() model.ContactForm {
	return model.ContactForm{
		FirstName: "A",
		LastName:  "B",
		Email:     "",
		Phone:     "123-456-7890",
		State:     "Texas",
	}
}

func TestValidateContact(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.ContactForm)
		wantKey string
	}{
		{"valid with empty email", func(f *model.ContactForm) {}, ""},
		{"missing first name", func(f *model.ContactForm) { f.FirstName = " " }, "first_name"},
		{"missing last name", func(f *model.ContactForm) { f.LastName = "" }, "last_name"},
		{"bad email", func(f *model.ContactForm) { f.Email = "not-an-email" }, "email"},
		{"good email", func(f *model.ContactForm) { f.Email = "a@b.com" }, ""},
		{"missing phone", func(f *model.ContactForm) { f.Phone = "" }, "phone"},
		{"short phone", func(f *model.ContactForm) { f.Phone = "123-456" }, "phone"},
		{"missing state", func(f *model.ContactForm) { f.State = "" }, "state"},
		{"unknown state", func(f *model.ContactForm) { f.State = "Narnia" }, "state"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := validForm()
			c.mutate(&f)
			errs := ValidateContact(f)
			if c.wantKey == "" {
				if len(errs) != 0 {
					t.Fatalf("errors = %v, want none", errs)
				}
				return
			}
			if _, ok := errs[c.wantKey]; !ok {
				t.Fatalf("errors = %v, want key %q", errs, c.wantKey)
			}
		})
	}
}

func TestValidateContact_DCAccepted(t *testing.T) {
	f := validForm()
	f.State = "District of Columbia"
	if errs := ValidateContact(f); len(errs) != 0 {
		t.Fatalf("errors = %v, want none", errs)
	}
}

package orders

import (
	"errors"
	"testing"
)

func validCustomer() Customer {
	return Customer{Name: "Иван Петров", Phone: "+7 (900) 123-45-67", Email: "ivan@example.com"}
}

func TestValidateCustomerOK(t *testing.T) {
	if err := ValidateCustomer(validCustomer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCustomerFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Customer)
		field  string
	}{
		{"empty name", func(c *Customer) { c.Name = "" }, "name"},
		{"single rune name", func(c *Customer) { c.Name = "И" }, "name"},
		{"whitespace name", func(c *Customer) { c.Name = "   " }, "name"},
		{"empty phone", func(c *Customer) { c.Phone = "" }, "phone"},
		{"letters in phone", func(c *Customer) { c.Phone = "позвоните мне" }, "phone"},
		{"too few digits", func(c *Customer) { c.Phone = "+7 900 12" }, "phone"},
		{"empty email", func(c *Customer) { c.Email = "" }, "email"},
		{"email without at", func(c *Customer) { c.Email = "ivan.example.com" }, "email"},
		{"email without domain dot", func(c *Customer) { c.Email = "ivan@example" }, "email"},
		{"email with space", func(c *Customer) { c.Email = "iv an@example.com" }, "email"},
	}
	for _, c := range cases {
		cust := validCustomer()
		c.mutate(&cust)
		err := ValidateCustomer(cust)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", c.name, err)
			continue
		}
		if ve.Field != c.field {
			t.Errorf("%s: expected field %q, got %q", c.name, c.field, ve.Field)
		}
	}
}

func TestValidateCustomerPhoneFormats(t *testing.T) {
	for _, phone := range []string{"89001234567", "+7 (900) 123-45-67", "8 900 123 45 67"} {
		c := validCustomer()
		c.Phone = phone
		if err := ValidateCustomer(c); err != nil {
			t.Errorf("phone %q must be accepted: %v", phone, err)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		if !ValidStatus(s) {
			t.Errorf("status %q must be valid", s)
		}
	}
	if ValidStatus("shipped") || ValidStatus("") {
		t.Error("unknown statuses must be rejected")
	}
}

func TestCheckoutFormValidate(t *testing.T) {
	ch := Challenge{A: 6, B: 2, Op: "-"}
	form := CheckoutForm{Customer: validCustomer(), Challenge: &ch, ChallengeAnswer: "4"}
	if err := form.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	form.ChallengeAnswer = "5"
	if err := form.Validate(); err == nil {
		t.Fatal("wrong answer must fail")
	}

	form.Challenge = nil
	err := form.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "challenge" {
		t.Fatalf("missing challenge must fail closed, got %v", err)
	}
}

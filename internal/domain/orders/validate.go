package orders

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidationError — ошибка заполнения конкретного поля формы.
// Отправка заказа при этом блокируется, корзина не меняется.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	phoneRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitRe = regexp.MustCompile(`\D`)
)

// ValidateCustomer проверяет контактные поля. Используется и формой на
// витрине, и точкой приёма заказов.
func ValidateCustomer(c Customer) error {
	if utf8.RuneCountInString(strings.TrimSpace(c.Name)) < 2 {
		return &ValidationError{Field: "name", Message: "укажите ФИО"}
	}
	phone := strings.TrimSpace(c.Phone)
	if phone == "" {
		return &ValidationError{Field: "phone", Message: "укажите телефон"}
	}
	if !phoneRe.MatchString(phone) || len(digitRe.ReplaceAllString(phone, "")) < 10 {
		return &ValidationError{Field: "phone", Message: "некорректный номер телефона"}
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return &ValidationError{Field: "email", Message: "укажите email"}
	}
	if !emailRe.MatchString(email) {
		return &ValidationError{Field: "email", Message: "некорректный email"}
	}
	return nil
}

// CheckoutForm — заполненная форма оформления заказа вместе с ответом
// на арифметическую проверку.
type CheckoutForm struct {
	Customer        Customer
	Address         string
	Comment         string
	Challenge       *Challenge
	ChallengeAnswer string
}

// Validate проверяет контактные поля и проверку. Незаданная проверка
// блокирует отправку так же, как неверный ответ.
func (f CheckoutForm) Validate() error {
	if err := ValidateCustomer(f.Customer); err != nil {
		return err
	}
	if f.Challenge == nil {
		return &ValidationError{Field: "challenge", Message: "решите задачу для подтверждения"}
	}
	if !f.Challenge.Verify(f.ChallengeAnswer) {
		return &ValidationError{Field: "challenge", Message: "неверный ответ на задачу"}
	}
	return nil
}

package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/Quaxww/tmk-store/internal/domain/orders"
)

func TestFormatOrder(t *testing.T) {
	o := &orders.Order{
		Number:   "TMK-1-1",
		Customer: orders.Customer{Name: "Иван Петров", Phone: "89001234567", Email: "ivan@example.com"},
		Delivery: orders.Delivery{Address: "Москва, ул. Ленина, 1"},
		Items: []orders.Item{
			{Name: "Труба 57х3.5", Quantity: 10, Unit: "meters", UnitPrice: 100, TotalPrice: 1000},
			{Name: "Труба 108х4", Quantity: 0.5, Unit: "tons", UnitPrice: 50000, TotalPrice: 25000},
		},
		Total:     26000,
		Comment:   "позвонить заранее",
		Status:    orders.StatusProcessing,
		CreatedAt: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	log := []orders.StatusChange{
		{OldStatus: orders.StatusNew, NewStatus: orders.StatusProcessing, Reason: "взял в работу", ChangedBy: "manager1", ChangedAt: time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)},
	}

	text := formatOrder(o, log)
	for _, want := range []string{
		"TMK-1-1", "В работе", "Иван Петров", "15.03.2026 10:30",
		"10.00 м", "0.50 т", "Итого: 26000.00 ₽",
		"позвонить заранее", "История статусов", "взял в работу", "@manager1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("card must contain %q:\n%s", want, text)
		}
	}
}

func TestFormatOrderWithoutOptionalParts(t *testing.T) {
	o := &orders.Order{Number: "TMK-2-2", Status: orders.StatusNew}
	text := formatOrder(o, nil)
	if strings.Contains(text, "Компания") || strings.Contains(text, "Комментарий") || strings.Contains(text, "История") {
		t.Errorf("optional sections must be omitted:\n%s", text)
	}
}

func TestStatusTitles(t *testing.T) {
	for _, s := range orders.Statuses {
		if statusTitle(s) == s {
			t.Errorf("status %q must be humanized", s)
		}
		if statusIcon(s) == "❔" {
			t.Errorf("status %q must have a dedicated icon", s)
		}
	}
	if statusTitle("shipped") != "shipped" {
		t.Error("unknown status falls back to raw value")
	}
}

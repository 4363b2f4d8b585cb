package cart

import (
	"errors"
	"fmt"

	"github.com/Quaxww/tmk-store/internal/domain/catalog"
	"github.com/Quaxww/tmk-store/internal/domain/pricing"
)

var (
	ErrInvalidQuantity = errors.New("cart: quantity must be positive")
	ErrInvalidUnit     = errors.New("cart: unknown unit")
	ErrNoSuchLine      = errors.New("cart: line index out of range")
)

// InsufficientStockError — запрошенное количество превышает остаток.
// Корзина при этом не меняется.
type InsufficientStockError struct {
	ProductID string
	Unit      pricing.Unit
	Requested float64
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("недостаточно товара %s: запрошено %.2f %s, доступно %.2f %s",
		e.ProductID, e.Requested, e.Unit.Short(), e.Available, e.Unit.Short())
}

// Line — позиция корзины: одна пара (товар, единица измерения).
// Цена за единицу фиксируется при первом добавлении и при слияниях не
// пересчитывается по текущим порогам.
type Line struct {
	Product    catalog.Product
	Quantity   float64
	Unit       pricing.Unit
	UnitPrice  float64
	TotalPrice float64
	Discount   float64
}

// Ledger владеет позициями корзины одной сессии. Инвариант: у каждой
// позиции 0 < Quantity <= Available(Product, Unit), и на пару (товар,
// единица) приходится не больше одной позиции.
type Ledger struct {
	lines []Line
}

func NewLedger() *Ledger { return &Ledger{} }

// AddItem кладёт товар в корзину. Повторное добавление той же пары
// (товар, единица) сливает количества в одну позицию; сумма позиции
// пересчитывается по зафиксированной цене за единицу.
func (l *Ledger) AddItem(p catalog.Product, quantity float64, unit pricing.Unit) error {
	if !unit.Valid() {
		return ErrInvalidUnit
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	avail := Available(p, unit)
	if i := l.find(p.ID, unit); i >= 0 {
		ln := &l.lines[i]
		newQty := ln.Quantity + quantity
		if !Sufficient(newQty, avail) {
			return &InsufficientStockError{ProductID: p.ID, Unit: unit, Requested: newQty, Available: avail}
		}
		ln.Quantity = newQty
		ln.TotalPrice = ln.UnitPrice * newQty
		return nil
	}
	if !Sufficient(quantity, avail) {
		return &InsufficientStockError{ProductID: p.ID, Unit: unit, Requested: quantity, Available: avail}
	}
	q := pricing.Calculate(p, quantity, unit)
	l.lines = append(l.lines, Line{
		Product:    p,
		Quantity:   quantity,
		Unit:       unit,
		UnitPrice:  q.UnitPrice,
		TotalPrice: q.TotalPrice,
		Discount:   q.Discount,
	})
	return nil
}

// ChangeQuantity сдвигает количество позиции на clicks шагов: шаг 1 для
// метров, 0.1 для тонн. Количество <= 0 убирает позицию; превышение
// остатка отклоняется без изменений.
func (l *Ledger) ChangeQuantity(index, clicks int) error {
	if index < 0 || index >= len(l.lines) {
		return ErrNoSuchLine
	}
	ln := &l.lines[index]
	newQty := ln.Quantity + float64(clicks)*ln.Unit.Step()
	if newQty <= 0 {
		l.lines = append(l.lines[:index], l.lines[index+1:]...)
		return nil
	}
	avail := Available(ln.Product, ln.Unit)
	if !Sufficient(newQty, avail) {
		return &InsufficientStockError{ProductID: ln.Product.ID, Unit: ln.Unit, Requested: newQty, Available: avail}
	}
	ln.Quantity = newQty
	ln.TotalPrice = ln.UnitPrice * newQty
	return nil
}

// RemoveItem убирает позицию безусловно.
func (l *Ledger) RemoveItem(index int) error {
	if index < 0 || index >= len(l.lines) {
		return ErrNoSuchLine
	}
	l.lines = append(l.lines[:index], l.lines[index+1:]...)
	return nil
}

// Total — сумма по всем позициям.
func (l *Ledger) Total() float64 {
	sum := 0.0
	for _, ln := range l.lines {
		sum += ln.TotalPrice
	}
	return sum
}

// Count — суммарное количество по всем позициям (для бейджа корзины).
func (l *Ledger) Count() float64 {
	sum := 0.0
	for _, ln := range l.lines {
		sum += ln.Quantity
	}
	return sum
}

func (l *Ledger) Len() int { return len(l.lines) }

// Lines возвращает копию позиций для отрисовки.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Clear опустошает корзину. Вызывается после успешного оформления заказа.
func (l *Ledger) Clear() { l.lines = nil }

func (l *Ledger) find(productID string, unit pricing.Unit) int {
	for i, ln := range l.lines {
		if ln.Product.ID == productID && ln.Unit == unit {
			return i
		}
	}
	return -1
}

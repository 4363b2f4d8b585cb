package shop

import (
	"context"
	"errors"

	"github.com/Quaxww/tmk-store/internal/domain/cart"
	"github.com/Quaxww/tmk-store/internal/domain/catalog"
	"github.com/Quaxww/tmk-store/internal/domain/orders"
	"github.com/Quaxww/tmk-store/internal/domain/pricing"
)

var (
	ErrEmptyCart        = errors.New("shop: cart is empty")
	ErrUnknownProduct   = errors.New("shop: unknown product")
	ErrSubmitterMissing = errors.New("shop: submitter is not configured")
)

// Submitter отправляет заявку на точку приёма заказов.
type Submitter interface {
	Submit(ctx context.Context, s orders.Submission) (string, error)
}

// Session — состояние одной покупательской сессии: каталог, фильтры и
// корзина. Сессии друг про друга не знают, блокировки не нужны.
// Повторную отправку заказа, пока не завершилась первая, должна
// блокировать вызывающая сторона (задизейбленная кнопка).
type Session struct {
	products []catalog.Product
	Filters  catalog.FilterState
	Cart     *cart.Ledger
}

// NewSession строит сессию над готовым каталогом. Каталог после этого
// не меняется до конца сессии.
func NewSession(products []catalog.Product) *Session {
	return &Session{products: products, Cart: cart.NewLedger()}
}

// View — текущая проекция каталога по фильтрам сессии.
func (s *Session) View() []catalog.Product {
	return catalog.Project(s.products, s.Filters)
}

// ClearFilters сбрасывает фильтры; View после этого возвращает каталог
// в исходном порядке.
func (s *Session) ClearFilters() {
	s.Filters = catalog.FilterState{}
}

// Options — значения для выпадающих фильтров по полному каталогу.
func (s *Session) Options() catalog.Options {
	return catalog.CollectOptions(s.products)
}

// Product ищет товар каталога по ID.
func (s *Session) Product(id string) (catalog.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// Quote считает цену для товара каталога.
func (s *Session) Quote(id string, quantity float64, unit pricing.Unit) (pricing.Quote, error) {
	p, ok := s.Product(id)
	if !ok {
		return pricing.Quote{}, ErrUnknownProduct
	}
	return pricing.Calculate(p, quantity, unit), nil
}

// AddToCart кладёт товар каталога в корзину сессии.
func (s *Session) AddToCart(id string, quantity float64, unit pricing.Unit) error {
	p, ok := s.Product(id)
	if !ok {
		return ErrUnknownProduct
	}
	return s.Cart.AddItem(p, quantity, unit)
}

// Checkout собирает заявку из корзины и отправляет её. Заявка уходит
// только после валидной формы с решённой задачей; при любой ошибке
// корзина остаётся ровно в прежнем состоянии, успех её опустошает.
func (s *Session) Checkout(ctx context.Context, submitter Submitter, form orders.CheckoutForm) (string, error) {
	if submitter == nil {
		return "", ErrSubmitterMissing
	}
	if s.Cart.Len() == 0 {
		return "", ErrEmptyCart
	}
	if err := form.Validate(); err != nil {
		return "", err
	}
	number, err := submitter.Submit(ctx, s.submission(form))
	if err != nil {
		return "", err
	}
	s.Cart.Clear()
	return number, nil
}

// submission переводит корзину в формат заявки.
func (s *Session) submission(form orders.CheckoutForm) orders.Submission {
	lines := s.Cart.Lines()
	items := make([]orders.Item, 0, len(lines))
	for _, ln := range lines {
		items = append(items, orders.Item{
			ProductID:     ln.Product.ID,
			Name:          ln.Product.Name,
			Type:          ln.Product.TypeInfo.Type,
			Gost:          ln.Product.Gost,
			SteelGrade:    ln.Product.SteelGrade,
			Diameter:      ln.Product.Diameter,
			WallThickness: ln.Product.PipeWallThickness,
			Warehouse:     ln.Product.Stock.Stock,
			Quantity:      ln.Quantity,
			Unit:          string(ln.Unit),
			UnitPrice:     ln.UnitPrice,
			TotalPrice:    ln.TotalPrice,
			Discount:      ln.Discount,
		})
	}
	return orders.Submission{
		Customer: form.Customer,
		Delivery: orders.Delivery{Address: form.Address},
		Order: orders.Body{
			Items:   items,
			Total:   s.Cart.Total(),
			Comment: form.Comment,
		},
	}
}

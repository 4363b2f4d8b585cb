package cart

import (
	"github.com/Quaxww/tmk-store/internal/domain/catalog"
	"github.com/Quaxww/tmk-store/internal/domain/pricing"
)

// Available — живой остаток товара по выбранной единице измерения.
// Товар без записи остатка даёт 0.
func Available(p catalog.Product, unit pricing.Unit) float64 {
	if unit == pricing.Tons {
		return p.Remnant.InStockT
	}
	return p.Remnant.InStockM
}

// Sufficient проверяет, укладывается ли запрошенное количество в остаток.
// Вызывается перед каждой операцией корзины, увеличивающей количество.
func Sufficient(requested, available float64) bool {
	return requested <= available
}

package pricing

import "github.com/Quaxww/tmk-store/internal/domain/catalog"

// Unit — единица измерения количества труб.
type Unit string

const (
	Meters Unit = "meters"
	Tons   Unit = "tons"
)

func (u Unit) Valid() bool { return u == Meters || u == Tons }

// Step — шаг изменения количества в корзине за один клик.
func (u Unit) Step() float64 {
	if u == Tons {
		return 0.1
	}
	return 1
}

// Short — короткое обозначение для витрины и сообщений.
func (u Unit) Short() string {
	if u == Tons {
		return "т"
	}
	return "м"
}

// Quote — расчёт цены для пары (товар, количество, единица). Считается
// заново на каждый запрос и нигде не кешируется.
type Quote struct {
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	Discount   float64 `json:"discount"` // доля скидки от базовой цены, [0,1)
}

// Calculate выбирает цену за единицу по оптовым порогам.
//
// Порядок ступеней — от большей скидки к меньшей: сначала второй порог,
// потом первый, иначе базовая цена. Ступень срабатывает, только если её
// порог задан, количество его достигло и цена ступени ниже базовой.
// Нулевая цена ступени означает «не задана» и наследует предыдущую.
// Товар без ценовой записи даёт нулевой расчёт, это не ошибка.
// Округление — забота вызывающей стороны.
func Calculate(p catalog.Product, quantity float64, unit Unit) Quote {
	var base, limit1, price1, limit2, price2 float64
	if unit == Tons {
		base = p.Price.PriceT
		limit1, price1 = p.Price.PriceLimitT1, p.Price.PriceT1
		limit2, price2 = p.Price.PriceLimitT2, p.Price.PriceT2
	} else {
		base = p.Price.PriceM
		limit1, price1 = p.Price.PriceLimitM1, p.Price.PriceM1
		limit2, price2 = p.Price.PriceLimitM2, p.Price.PriceM2
	}
	if price1 == 0 {
		price1 = base
	}
	if price2 == 0 {
		price2 = price1
	}

	unitPrice := base
	switch {
	case limit2 > 0 && quantity >= limit2 && price2 < base:
		unitPrice = price2
	case limit1 > 0 && quantity >= limit1 && price1 < base:
		unitPrice = price1
	}

	discount := 0.0
	if base > 0 && unitPrice < base {
		discount = (base - unitPrice) / base
	}
	return Quote{
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice * quantity,
		Discount:   discount,
	}
}

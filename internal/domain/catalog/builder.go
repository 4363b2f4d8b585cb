package catalog

import "errors"

// ErrDataset — один из справочников отсутствует или не прочитался.
// Это ошибка данных, а не конкретной позиции: каталог не собирается целиком.
var ErrDataset = errors.New("catalog: dataset missing or malformed")

// Build собирает карточки товаров из пяти справочников.
//
// Для каждой номенклатурной позиции берётся первая строка цены и первая
// строка остатка с совпадающим ID (при дублях ключей побеждает первая).
// Склад ищется по IDStock остатка, а если остатка нет — по IDStock цены.
// Каждая позиция номенклатуры даёт ровно одну карточку, даже если ни одна
// связь не нашлась.
func Build(d Datasets) ([]Product, error) {
	if d.Nomenclature == nil || d.Prices == nil || d.Remnants == nil || d.Stocks == nil || d.Types == nil {
		return nil, ErrDataset
	}
	out := make([]Product, 0, len(d.Nomenclature))
	for _, n := range d.Nomenclature {
		p := Product{Nomenclature: n}
		for _, pr := range d.Prices {
			if pr.ID == n.ID {
				p.Price = pr
				break
			}
		}
		for _, r := range d.Remnants {
			if r.ID == n.ID {
				p.Remnant = r
				break
			}
		}
		stockID := p.Remnant.IDStock
		if stockID == "" {
			stockID = p.Price.IDStock
		}
		if stockID != "" {
			for _, s := range d.Stocks {
				if s.IDStock == stockID {
					p.Stock = s
					break
				}
			}
		}
		for _, t := range d.Types {
			if t.IDType == n.IDType {
				p.TypeInfo = t
				break
			}
		}
		out = append(out, p)
	}
	return out, nil
}

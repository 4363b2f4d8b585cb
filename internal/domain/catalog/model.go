package catalog

// Nomenclature — строка справочника номенклатуры. Загружается один раз
// на сессию и дальше не меняется.
type Nomenclature struct {
	ID                string  `json:"ID"`
	IDType            string  `json:"IDType"`
	Name              string  `json:"Name"`
	Gost              string  `json:"Gost"`
	Manufacturer      string  `json:"Manufacturer"`
	SteelGrade        string  `json:"SteelGrade"`
	Diameter          float64 `json:"Diameter"`
	PipeWallThickness float64 `json:"PipeWallThickness"`
	Koef              float64 `json:"Koef"`
}

// Price — цены товара на конкретном складе с оптовыми порогами.
// M-поля — за метры, T-поля — за тонны.
type Price struct {
	ID           string  `json:"ID"`
	IDStock      string  `json:"IDStock"`
	PriceM       float64 `json:"PriceM"`
	PriceLimitM1 float64 `json:"PriceLimitM1"`
	PriceM1      float64 `json:"PriceM1"`
	PriceLimitM2 float64 `json:"PriceLimitM2"`
	PriceM2      float64 `json:"PriceM2"`
	PriceT       float64 `json:"PriceT"`
	PriceLimitT1 float64 `json:"PriceLimitT1"`
	PriceT1      float64 `json:"PriceT1"`
	PriceLimitT2 float64 `json:"PriceLimitT2"`
	PriceT2      float64 `json:"PriceT2"`
}

// Remnant — остаток товара на складе в метрах и тоннах.
type Remnant struct {
	ID       string  `json:"ID"`
	IDStock  string  `json:"IDStock"`
	InStockM float64 `json:"InStockM"`
	InStockT float64 `json:"InStockT"`
}

// Stock — справочник складов.
type Stock struct {
	IDStock string `json:"IDStock"`
	Stock   string `json:"Stock"`
	Address string `json:"Address"`
}

// TypeInfo — справочник типов продукции.
type TypeInfo struct {
	IDType string `json:"IDType"`
	Type   string `json:"Type"`
}

// Product — собранная карточка товара: номенклатура плюс найденные по
// связям цена, остаток, склад и тип. Отсутствующая связь даёт пустую
// запись, поэтому поля можно читать без проверок на наличие.
type Product struct {
	Nomenclature
	Price    Price    `json:"price"`
	Remnant  Remnant  `json:"remnant"`
	Stock    Stock    `json:"stock"`
	TypeInfo TypeInfo `json:"typeInfo"`
}

// StockStatus — грубая классификация наличия для витрины.
type StockStatus string

const (
	StockAvailable StockStatus = "available"
	StockLow       StockStatus = "low"
	StockNone      StockStatus = "none"
)

func (p Product) StockStatus() StockStatus {
	m, t := p.Remnant.InStockM, p.Remnant.InStockT
	switch {
	case m > 100 || t > 1:
		return StockAvailable
	case m > 0 || t > 0:
		return StockLow
	default:
		return StockNone
	}
}

// Datasets — пять исходных справочников, из которых собирается каталог.
type Datasets struct {
	Nomenclature []Nomenclature
	Prices       []Price
	Remnants     []Remnant
	Stocks       []Stock
	Types        []TypeInfo
}

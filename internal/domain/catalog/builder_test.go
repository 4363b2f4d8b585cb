package catalog

import (
	"errors"
	"testing"
)

func testDatasets() Datasets {
	return Datasets{
		Nomenclature: []Nomenclature{
			{ID: "n1", IDType: "t1", Name: "Труба 57х3.5", Gost: "ГОСТ 8732-78", SteelGrade: "Ст20", Diameter: 57, PipeWallThickness: 3.5},
			{ID: "n2", IDType: "t2", Name: "Труба 108х4", Gost: "ГОСТ 10704-91", SteelGrade: "09Г2С", Diameter: 108, PipeWallThickness: 4},
			{ID: "n3", IDType: "missing", Name: "Труба 159х5", Gost: "ГОСТ 8732-78", SteelGrade: "Ст20", Diameter: 159, PipeWallThickness: 5},
		},
		Prices: []Price{
			{ID: "n1", IDStock: "s1", PriceM: 100, PriceLimitM1: 50, PriceM1: 90},
			{ID: "n2", IDStock: "s2", PriceM: 250},
		},
		Remnants: []Remnant{
			{ID: "n1", IDStock: "s1", InStockM: 500, InStockT: 2},
		},
		Stocks: []Stock{
			{IDStock: "s1", Stock: "Склад Москва", Address: "Москва"},
			{IDStock: "s2", Stock: "Склад Казань", Address: "Казань"},
		},
		Types: []TypeInfo{
			{IDType: "t1", Type: "Бесшовные"},
			{IDType: "t2", Type: "Электросварные"},
		},
	}
}

func TestBuildJoinsByID(t *testing.T) {
	products, err := Build(testDatasets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	p := products[0]
	if p.Price.PriceM != 100 || p.Remnant.InStockM != 500 {
		t.Errorf("n1 join incorrect: %+v", p)
	}
	if p.Stock.Stock != "Склад Москва" {
		t.Errorf("n1 stock join incorrect: %q", p.Stock.Stock)
	}
	if p.TypeInfo.Type != "Бесшовные" {
		t.Errorf("n1 type join incorrect: %q", p.TypeInfo.Type)
	}
}

func TestBuildStockFallsBackToPrice(t *testing.T) {
	// У n2 нет остатка, склад должен подтянуться по IDStock цены.
	products, err := Build(testDatasets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := products[1]
	if p.Remnant.ID != "" {
		t.Fatalf("n2 should have no remnant, got %+v", p.Remnant)
	}
	if p.Stock.Stock != "Склад Казань" {
		t.Errorf("expected stock from price IDStock, got %q", p.Stock.Stock)
	}
}

func TestBuildRemnantStockWinsOverPrice(t *testing.T) {
	d := testDatasets()
	d.Remnants[0].IDStock = "s2"
	products, err := Build(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products[0].Stock.Stock != "Склад Казань" {
		t.Errorf("remnant IDStock must win, got %q", products[0].Stock.Stock)
	}
}

func TestBuildMissingJoinsGiveEmptyRecords(t *testing.T) {
	products, err := Build(testDatasets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := products[2]
	if p.Price != (Price{}) || p.Remnant != (Remnant{}) || p.Stock != (Stock{}) || p.TypeInfo != (TypeInfo{}) {
		t.Errorf("expected empty joined records for orphan row, got %+v", p)
	}
}

func TestBuildFirstMatchWinsOnDuplicates(t *testing.T) {
	d := testDatasets()
	d.Prices = append([]Price{{ID: "n1", IDStock: "s2", PriceM: 1}}, d.Prices...)
	products, err := Build(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products[0].Price.PriceM != 1 {
		t.Errorf("expected first price row to win, got %v", products[0].Price.PriceM)
	}
}

func TestBuildNilDatasetFails(t *testing.T) {
	d := testDatasets()
	d.Remnants = nil
	if _, err := Build(d); !errors.Is(err, ErrDataset) {
		t.Fatalf("expected ErrDataset, got %v", err)
	}
}

func TestStockStatus(t *testing.T) {
	cases := []struct {
		m, t float64
		want StockStatus
	}{
		{500, 2, StockAvailable},
		{101, 0, StockAvailable},
		{0, 1.5, StockAvailable},
		{50, 0.5, StockLow},
		{0, 0.2, StockLow},
		{0, 0, StockNone},
	}
	for _, c := range cases {
		p := Product{Remnant: Remnant{InStockM: c.m, InStockT: c.t}}
		if got := p.StockStatus(); got != c.want {
			t.Errorf("StockStatus(m=%v t=%v) = %s, want %s", c.m, c.t, got, c.want)
		}
	}
}

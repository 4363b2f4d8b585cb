package catalog

import (
	"reflect"
	"testing"
)

func filterFixture() []Product {
	return []Product{
		{
			Nomenclature: Nomenclature{ID: "a", Name: "Труба 108х4", Gost: "ГОСТ 10704-91", SteelGrade: "09Г2С", Diameter: 108, PipeWallThickness: 4},
			Price:        Price{PriceM: 250},
			Remnant:      Remnant{InStockM: 50},
			Stock:        Stock{Stock: "Склад Казань"},
			TypeInfo:     TypeInfo{Type: "Электросварные"},
		},
		{
			Nomenclature: Nomenclature{ID: "b", Name: "Труба 57х3.5", Gost: "ГОСТ 8732-78", SteelGrade: "Ст20", Diameter: 57, PipeWallThickness: 3.5},
			Price:        Price{PriceM: 100},
			Remnant:      Remnant{InStockM: 500},
			Stock:        Stock{Stock: "Склад Москва"},
			TypeInfo:     TypeInfo{Type: "Бесшовные"},
		},
		{
			Nomenclature: Nomenclature{ID: "c", Name: "Труба 159х5", Gost: "ГОСТ 8732-78", SteelGrade: "Ст20", Diameter: 159, PipeWallThickness: 5},
			Price:        Price{PriceM: 400},
			Remnant:      Remnant{InStockM: 120},
			Stock:        Stock{Stock: "Склад Москва"},
			TypeInfo:     TypeInfo{Type: "Бесшовные"},
		},
	}
}

func ids(ps []Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestProjectEmptyFilterKeepsOriginalOrder(t *testing.T) {
	src := filterFixture()
	view := Project(src, FilterState{})
	if !reflect.DeepEqual(ids(view), []string{"a", "b", "c"}) {
		t.Fatalf("empty filter must reproduce source order, got %v", ids(view))
	}
	// Исходный срез не должен меняться проекцией.
	view[0].Name = "mutated"
	if src[0].Name == "mutated" {
		t.Error("Project must not share backing array with source")
	}
}

func TestProjectFiltersAreConjunctive(t *testing.T) {
	view := Project(filterFixture(), FilterState{Stock: "Склад Москва", Steel: "Ст20", Gost: "ГОСТ 8732-78"})
	if !reflect.DeepEqual(ids(view), []string{"b", "c"}) {
		t.Errorf("expected [b c], got %v", ids(view))
	}
	view = Project(filterFixture(), FilterState{Stock: "Склад Москва", Type: "Электросварные"})
	if len(view) != 0 {
		t.Errorf("conflicting filters must match nothing, got %v", ids(view))
	}
}

func TestProjectSearchIsCaseInsensitive(t *testing.T) {
	view := Project(filterFixture(), FilterState{Search: "гост 8732"})
	if !reflect.DeepEqual(ids(view), []string{"b", "c"}) {
		t.Errorf("expected [b c], got %v", ids(view))
	}
	view = Project(filterFixture(), FilterState{Search: "108"})
	if !reflect.DeepEqual(ids(view), []string{"a"}) {
		t.Errorf("expected [a], got %v", ids(view))
	}
}

func TestProjectNumericFilterIsLoose(t *testing.T) {
	view := Project(filterFixture(), FilterState{Diameter: " 57 "})
	if !reflect.DeepEqual(ids(view), []string{"b"}) {
		t.Errorf("expected [b], got %v", ids(view))
	}
	view = Project(filterFixture(), FilterState{Thickness: "3.5"})
	if !reflect.DeepEqual(ids(view), []string{"b"}) {
		t.Errorf("expected [b], got %v", ids(view))
	}
	// Нечисловой ввод не совпадает ни с одной позицией.
	if view := Project(filterFixture(), FilterState{Diameter: "abc"}); len(view) != 0 {
		t.Errorf("non-numeric filter must match nothing, got %v", ids(view))
	}
}

func TestProjectSortKeys(t *testing.T) {
	cases := []struct {
		key  SortKey
		want []string
	}{
		{key: SortName, want: []string{"a", "c", "b"}},
		{key: SortPrice, want: []string{"b", "a", "c"}},
		{key: SortPriceDesc, want: []string{"c", "a", "b"}},
		{key: SortDiameter, want: []string{"b", "a", "c"}},
		{key: SortThickness, want: []string{"b", "a", "c"}},
		{key: SortStock, want: []string{"b", "c", "a"}},
		{key: SortKey("bogus"), want: []string{"a", "c", "b"}}, // неизвестный ключ = по имени
	}
	for _, c := range cases {
		view := Project(filterFixture(), FilterState{Sort: c.key})
		if !reflect.DeepEqual(ids(view), c.want) {
			t.Errorf("sort %q: expected %v, got %v", c.key, c.want, ids(view))
		}
	}
}

func TestProjectSortIsStable(t *testing.T) {
	src := []Product{
		{Nomenclature: Nomenclature{ID: "x"}, Price: Price{PriceM: 100}},
		{Nomenclature: Nomenclature{ID: "y"}, Price: Price{PriceM: 100}},
		{Nomenclature: Nomenclature{ID: "z"}, Price: Price{PriceM: 50}},
	}
	view := Project(src, FilterState{Sort: SortPrice})
	if !reflect.DeepEqual(ids(view), []string{"z", "x", "y"}) {
		t.Errorf("equal keys must keep source order, got %v", ids(view))
	}
}

func TestClearedFiltersReproduceCatalogExactly(t *testing.T) {
	src := filterFixture()
	f := FilterState{Stock: "Склад Москва", Sort: SortPrice}
	_ = Project(src, f)
	f = FilterState{}
	view := Project(src, f)
	if !reflect.DeepEqual(view, src) {
		t.Fatal("cleared filters must reproduce the catalog bit-for-bit")
	}
}

func TestCollectOptions(t *testing.T) {
	opts := CollectOptions(filterFixture())
	if !reflect.DeepEqual(opts.Stocks, []string{"Склад Казань", "Склад Москва"}) {
		t.Errorf("stocks: %v", opts.Stocks)
	}
	if !reflect.DeepEqual(opts.Types, []string{"Бесшовные", "Электросварные"}) {
		t.Errorf("types: %v", opts.Types)
	}
	if !reflect.DeepEqual(opts.Steels, []string{"09Г2С", "Ст20"}) {
		t.Errorf("steels: %v", opts.Steels)
	}
}

func TestCollectOptionsSkipsEmpty(t *testing.T) {
	ps := append(filterFixture(), Product{})
	opts := CollectOptions(ps)
	for _, v := range opts.Gosts {
		if v == "" {
			t.Fatal("empty values must not appear in options")
		}
	}
}

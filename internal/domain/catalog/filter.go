package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// SortKey — ключ сортировки витрины.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPrice     SortKey = "price"      // по базовой цене за метр, по возрастанию
	SortPriceDesc SortKey = "price-desc" // по убыванию
	SortDiameter  SortKey = "diameter"
	SortThickness SortKey = "thickness"
	SortStock     SortKey = "stock" // по остатку в метрах, по убыванию
)

// FilterState — состояние фильтров одной сессии. Пустое поле не фильтрует.
// Пустой Sort сохраняет исходный порядок каталога, поэтому сброс фильтров
// возвращает витрину ровно в исходное состояние.
type FilterState struct {
	Stock     string
	Type      string
	Diameter  string
	Thickness string
	Gost      string
	Steel     string
	Search    string
	Sort      SortKey
}

// Project возвращает отфильтрованную и отсортированную проекцию каталога.
// Исходный срез не меняется.
func Project(products []Product, f FilterState) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	sortProducts(out, f.Sort)
	return out
}

func (f FilterState) matches(p Product) bool {
	if f.Stock != "" && p.Stock.Stock != f.Stock {
		return false
	}
	if f.Type != "" && p.TypeInfo.Type != f.Type {
		return false
	}
	if !matchNumeric(f.Diameter, p.Diameter) {
		return false
	}
	if !matchNumeric(f.Thickness, p.PipeWallThickness) {
		return false
	}
	if f.Gost != "" && p.Gost != f.Gost {
		return false
	}
	if f.Steel != "" && p.SteelGrade != f.Steel {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Gost), q) &&
			!strings.Contains(strings.ToLower(p.SteelGrade), q) {
			return false
		}
	}
	return true
}

// matchNumeric — нестрогое числовое сравнение: фильтр приходит строкой
// из поля ввода. Нечисловой ввод не совпадает ни с чем.
func matchNumeric(filter string, v float64) bool {
	if filter == "" {
		return true
	}
	want, err := strconv.ParseFloat(strings.TrimSpace(filter), 64)
	if err != nil {
		return false
	}
	return math.Abs(want-v) < 1e-9
}

// sortProducts сортирует устойчиво: равные ключи сохраняют прежний порядок.
// Непустой, но неизвестный ключ трактуется как сортировка по имени.
func sortProducts(ps []Product, key SortKey) {
	switch key {
	case "":
		return
	case SortPrice:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.PriceM < ps[j].Price.PriceM })
	case SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.PriceM > ps[j].Price.PriceM })
	case SortDiameter:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Diameter < ps[j].Diameter })
	case SortThickness:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].PipeWallThickness < ps[j].PipeWallThickness })
	case SortStock:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Remnant.InStockM > ps[j].Remnant.InStockM })
	default:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	}
}

// Options — уникальные значения для выпадающих фильтров витрины.
type Options struct {
	Stocks []string `json:"stocks"`
	Types  []string `json:"types"`
	Gosts  []string `json:"gosts"`
	Steels []string `json:"steels"`
}

// CollectOptions собирает отсортированные списки значений без пустых строк.
func CollectOptions(products []Product) Options {
	return Options{
		Stocks: uniqueSorted(products, func(p Product) string { return p.Stock.Stock }),
		Types:  uniqueSorted(products, func(p Product) string { return p.TypeInfo.Type }),
		Gosts:  uniqueSorted(products, func(p Product) string { return p.Gost }),
		Steels: uniqueSorted(products, func(p Product) string { return p.SteelGrade }),
	}
}

func uniqueSorted(products []Product, get func(Product) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		v := get(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

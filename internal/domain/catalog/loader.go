package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Имена пяти JSON-документов с данными.
const (
	FileNomenclature = "nomenclature.json"
	FilePrices       = "prices.json"
	FileRemnants     = "remnants.json"
	FileStocks       = "stocks.json"
	FileTypes        = "types.json"
)

// Обёртки документов: каждый файл содержит один массив под ключом ArrayOf<X>El.
type nomenclatureDoc struct {
	Items []Nomenclature `json:"ArrayOfNomenclatureEl"`
}
type pricesDoc struct {
	Items []Price `json:"ArrayOfPricesEl"`
}
type remnantsDoc struct {
	Items []Remnant `json:"ArrayOfRemnantsEl"`
}
type stocksDoc struct {
	Items []Stock `json:"ArrayOfStockEl"`
}
type typesDoc struct {
	Items []TypeInfo `json:"ArrayOfTypeEl"`
}

// Loader забирает справочники по HTTP с общего базового адреса.
type Loader struct {
	baseURL string
	client  *http.Client
}

func NewLoader(baseURL string, client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Loader{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// LoadAll загружает все пять документов. Любая ошибка загрузки или разбора
// проваливает сессию целиком (ErrDataset).
func (l *Loader) LoadAll(ctx context.Context) (Datasets, error) {
	raw := map[string][]byte{}
	for _, name := range []string{FileNomenclature, FilePrices, FileRemnants, FileStocks, FileTypes} {
		b, err := l.fetch(ctx, name)
		if err != nil {
			return Datasets{}, err
		}
		raw[name] = b
	}
	return parseDatasets(raw)
}

func (l *Loader) fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/"+name, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataset, name, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataset, name, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %s", ErrDataset, name, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataset, name, err)
	}
	return b, nil
}

// LoadDir читает те же пять документов из локального каталога.
func LoadDir(dir string) (Datasets, error) {
	raw := map[string][]byte{}
	for _, name := range []string{FileNomenclature, FilePrices, FileRemnants, FileStocks, FileTypes} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return Datasets{}, fmt.Errorf("%w: %s: %v", ErrDataset, name, err)
		}
		raw[name] = b
	}
	return parseDatasets(raw)
}

func parseDatasets(raw map[string][]byte) (Datasets, error) {
	var (
		nd nomenclatureDoc
		pd pricesDoc
		rd remnantsDoc
		sd stocksDoc
		td typesDoc
	)
	for name, v := range map[string]any{
		FileNomenclature: &nd,
		FilePrices:       &pd,
		FileRemnants:     &rd,
		FileStocks:       &sd,
		FileTypes:        &td,
	} {
		if err := json.Unmarshal(raw[name], v); err != nil {
			return Datasets{}, fmt.Errorf("%w: %s: %v", ErrDataset, name, err)
		}
	}
	ds := Datasets{
		Nomenclature: nd.Items,
		Prices:       pd.Items,
		Remnants:     rd.Items,
		Stocks:       sd.Items,
		Types:        td.Items,
	}
	// Документ без своего массива — такой же брак данных, как и битый JSON.
	if ds.Nomenclature == nil || ds.Prices == nil || ds.Remnants == nil || ds.Stocks == nil || ds.Types == nil {
		return Datasets{}, fmt.Errorf("%w: document without payload array", ErrDataset)
	}
	return ds, nil
}

package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Quaxww/tmk-store/internal/domain/catalog"
	"github.com/Quaxww/tmk-store/internal/domain/orders"
	"github.com/Quaxww/tmk-store/internal/domain/pricing"
	"github.com/Quaxww/tmk-store/internal/infra/metrics"
)

// OrderStore сохраняет принятые заказы.
type OrderStore interface {
	Save(ctx context.Context, s orders.Submission) (*orders.Order, error)
}

// API — обработчики витрины: приём заказов, каталог, расчёт цены.
type API struct {
	log      *slog.Logger
	store    OrderStore
	products []catalog.Product
}

func NewAPI(log *slog.Logger, store OrderStore, products []catalog.Product) *API {
	return &API{log: log, store: store, products: products}
}

// handleSubmit принимает заявку витрины: валидация контактов, сохранение,
// ответ {success, orderNumber | error}.
func (a *API) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, orders.Response{Error: "method not allowed"})
		return
	}
	metrics.OrdersReceived.Inc()

	var sub orders.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		metrics.OrdersRejected.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, orders.Response{Error: "некорректный запрос"})
		return
	}
	if err := orders.ValidateCustomer(sub.Customer); err != nil {
		metrics.OrdersRejected.WithLabelValues("validation").Inc()
		writeJSON(w, http.StatusBadRequest, orders.Response{Error: err.Error()})
		return
	}
	if len(sub.Order.Items) == 0 {
		metrics.OrdersRejected.WithLabelValues("empty_cart").Inc()
		writeJSON(w, http.StatusBadRequest, orders.Response{Error: "корзина пуста"})
		return
	}

	o, err := a.store.Save(r.Context(), sub)
	if err != nil {
		a.log.Error("save order failed", "err", err)
		metrics.OrdersRejected.WithLabelValues("storage").Inc()
		writeJSON(w, http.StatusInternalServerError, orders.Response{Error: "не удалось сохранить заказ"})
		return
	}
	metrics.OrdersSaved.Inc()
	a.log.Info("order received", "number", o.Number, "total", o.Total, "items", len(o.Items))
	writeJSON(w, http.StatusOK, orders.Response{Success: true, OrderNumber: o.Number})
}

// handleCatalog отдаёт проекцию каталога по фильтрам из query-параметров.
func (a *API) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, orders.Response{Error: "method not allowed"})
		return
	}
	q := r.URL.Query()
	fs := catalog.FilterState{
		Stock:     q.Get("stock"),
		Type:      q.Get("type"),
		Diameter:  q.Get("diameter"),
		Thickness: q.Get("thickness"),
		Gost:      q.Get("gost"),
		Steel:     q.Get("steel"),
		Search:    q.Get("search"),
		Sort:      catalog.SortKey(q.Get("sort")),
	}
	view := catalog.Project(a.products, fs)
	writeJSON(w, http.StatusOK, struct {
		Total    int               `json:"total"`
		Products []catalog.Product `json:"products"`
	}{Total: len(view), Products: view})
}

// handleOptions отдаёт значения для выпадающих фильтров.
func (a *API) handleOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, orders.Response{Error: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, catalog.CollectOptions(a.products))
}

// handleQuote считает цену для товара: /api/quote?id=...&quantity=...&unit=meters|tons.
func (a *API) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, orders.Response{Error: "method not allowed"})
		return
	}
	q := r.URL.Query()
	id := q.Get("id")
	quantity, err := strconv.ParseFloat(q.Get("quantity"), 64)
	if err != nil || quantity < 0 {
		writeJSON(w, http.StatusBadRequest, orders.Response{Error: "некорректное количество"})
		return
	}
	unit := pricing.Unit(q.Get("unit"))
	if unit == "" {
		unit = pricing.Meters
	}
	if !unit.Valid() {
		writeJSON(w, http.StatusBadRequest, orders.Response{Error: "некорректная единица измерения"})
		return
	}
	for _, p := range a.products {
		if p.ID == id {
			writeJSON(w, http.StatusOK, pricing.Calculate(p, quantity, unit))
			return
		}
	}
	writeJSON(w, http.StatusNotFound, orders.Response{Error: "товар не найден"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package orders

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Статусы заказа.
const (
	StatusNew        = "new"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

// Statuses — допустимые статусы в порядке жизненного цикла.
var Statuses = []string{StatusNew, StatusProcessing, StatusDone, StatusCancelled}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

type Delivery struct {
	Address string `json:"address"`
}

// Item — позиция заказа в том виде, в котором она уходит во внешний мир
// и хранится в базе.
type Item struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"product_name"`
	Type          string  `json:"product_type"`
	Gost          string  `json:"gost"`
	SteelGrade    string  `json:"steel_grade"`
	Diameter      float64 `json:"diameter"`
	WallThickness float64 `json:"wall_thickness"`
	Warehouse     string  `json:"warehouse"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
	Discount      float64 `json:"discount"`
}

type Body struct {
	Items   []Item  `json:"items"`
	Total   float64 `json:"total"`
	Comment string  `json:"comment"`
}

// Submission — заявка на заказ, как её отправляет витрина.
type Submission struct {
	Customer Customer `json:"customer"`
	Delivery Delivery `json:"delivery"`
	Order    Body     `json:"order"`
}

// Response — ответ точки приёма заказов.
type Response struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"orderNumber,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Order — сохранённый заказ.
type Order struct {
	ID        int64
	Number    string
	Customer  Customer
	Delivery  Delivery
	Items     []Item
	Total     float64
	Comment   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusChange — запись журнала смены статуса.
type StatusChange struct {
	OrderNumber string
	OldStatus   string
	NewStatus   string
	Reason      string
	ChangedBy   string
	ChangedAt   time.Time
}

// Stats — сводка по заказам для бота.
type Stats struct {
	Total     int
	ByStatus  map[string]int
	Today     int
	ThisWeek  int
	ThisMonth int
}

// NewNumber генерирует номер заказа вида TMK-<миллисекунды>-<случайное>.
func NewNumber() string {
	return fmt.Sprintf("TMK-%d-%d", time.Now().UnixMilli(), rand.IntN(1000))
}

// ValidStatus проверяет статус по списку допустимых.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

package dialog

// State — шаг диалога с ботом. Хранится в БД, чтобы переживать рестарты.
type State string

const (
	StateIdle State = "idle"

	// Заказы
	StateOrdersList State = "orders_list" // список последних заказов
	StateOrderCard  State = "order_card"  // карточка конкретного заказа

	// Поиск
	StateAwaitSearch State = "await_search" // ждём строку поиска

	// Смена статуса (только админ)
	StateAwaitStatusReason State = "await_status_reason" // ждём причину смены, в payload номер и новый статус
)

type Payload map[string]any

type Item struct {
	ChatID  int64
	State   State
	Payload Payload
}

package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Quaxww/tmk-store/internal/dialog"
	"github.com/Quaxww/tmk-store/internal/domain/orders"
	"github.com/Quaxww/tmk-store/internal/domain/pricing"
	"github.com/Quaxww/tmk-store/internal/domain/users"
)

const ordersPageSize = 10

func (b *Bot) showOrders(ctx context.Context, chatID int64) {
	list, err := b.orders.ListRecent(ctx, ordersPageSize)
	if err != nil {
		b.log.Error("list orders failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось получить заказы."))
		return
	}
	if len(list) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Заказов пока нет."))
		return
	}
	_ = b.states.Set(ctx, chatID, dialog.StateOrdersList, dialog.Payload{})
	m := tgbotapi.NewMessage(chatID, fmt.Sprintf("Последние заказы (%d):", len(list)))
	m.ReplyMarkup = ordersKeyboard(list)
	b.send(m)
}

func (b *Bot) showOrderCard(ctx context.Context, chatID int64, number string, admin bool) {
	o, err := b.orders.GetByNumber(ctx, number)
	if err != nil {
		b.log.Error("get order failed", "number", number, "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось получить заказ."))
		return
	}
	if o == nil {
		b.send(tgbotapi.NewMessage(chatID, "Заказ "+number+" не найден."))
		return
	}
	log, err := b.orders.StatusLog(ctx, number)
	if err != nil {
		b.log.Error("status log failed", "number", number, "err", err)
	}
	_ = b.states.Set(ctx, chatID, dialog.StateOrderCard, dialog.Payload{"number": number})
	m := tgbotapi.NewMessage(chatID, formatOrder(o, log))
	m.ReplyMarkup = orderCardKeyboard(o, admin)
	b.send(m)
}

func formatOrder(o *orders.Order, log []orders.StatusChange) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Заказ %s %s %s\n", o.Number, statusIcon(o.Status), statusTitle(o.Status))
	fmt.Fprintf(&sb, "От: %s\n", o.CreatedAt.Format("02.01.2006 15:04"))
	fmt.Fprintf(&sb, "Клиент: %s, %s, %s\n", o.Customer.Name, o.Customer.Phone, o.Customer.Email)
	if o.Customer.Company != "" {
		fmt.Fprintf(&sb, "Компания: %s\n", o.Customer.Company)
	}
	if o.Delivery.Address != "" {
		fmt.Fprintf(&sb, "Доставка: %s\n", o.Delivery.Address)
	}
	sb.WriteString("\nПозиции:\n")
	for i, it := range o.Items {
		fmt.Fprintf(&sb, "%d. %s — %.2f %s × %.2f ₽ = %.2f ₽\n",
			i+1, it.Name, it.Quantity, pricing.Unit(it.Unit).Short(), it.UnitPrice, it.TotalPrice)
	}
	fmt.Fprintf(&sb, "\nИтого: %.2f ₽", o.Total)
	if o.Comment != "" {
		fmt.Fprintf(&sb, "\nКомментарий: %s", o.Comment)
	}
	if len(log) > 0 {
		sb.WriteString("\n\nИстория статусов:\n")
		for _, c := range log {
			fmt.Fprintf(&sb, "%s: %s → %s", c.ChangedAt.Format("02.01 15:04"), statusTitle(c.OldStatus), statusTitle(c.NewStatus))
			if c.Reason != "" {
				fmt.Fprintf(&sb, " (%s)", c.Reason)
			}
			if c.ChangedBy != "" {
				fmt.Fprintf(&sb, " — @%s", c.ChangedBy)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (b *Bot) runSearch(ctx context.Context, chatID int64, query string) {
	defer func() { _ = b.states.Reset(ctx, chatID) }()
	if query == "" {
		b.send(tgbotapi.NewMessage(chatID, "Пустой запрос. Попробуйте ещё раз."))
		return
	}
	list, err := b.orders.Search(ctx, query)
	if err != nil {
		b.log.Error("search orders failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось выполнить поиск."))
		return
	}
	if len(list) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Ничего не найдено по запросу «"+query+"»."))
		return
	}
	if len(list) > ordersPageSize {
		list = list[:ordersPageSize]
	}
	m := tgbotapi.NewMessage(chatID, fmt.Sprintf("Найдено по запросу «%s»:", query))
	m.ReplyMarkup = ordersKeyboard(list)
	b.send(m)
}

func (b *Bot) showStats(ctx context.Context, chatID int64) {
	st, err := b.orders.Stats(ctx)
	if err != nil {
		b.log.Error("order stats failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось получить статистику."))
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Заказы\nВсего: %d\n", st.Total)
	for _, s := range orders.Statuses {
		if n := st.ByStatus[s]; n > 0 {
			fmt.Fprintf(&sb, "%s %s: %d\n", statusIcon(s), statusTitle(s), n)
		}
	}
	fmt.Fprintf(&sb, "\nСегодня: %d\nЗа неделю: %d\nЗа месяц: %d", st.Today, st.ThisWeek, st.ThisMonth)
	b.send(tgbotapi.NewMessage(chatID, sb.String()))
}

// assignRole выполняет /role <telegram_id> <admin|manager>.
func (b *Bot) assignRole(ctx context.Context, chatID int64, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		b.send(tgbotapi.NewMessage(chatID, "Формат: /role <telegram_id> <admin|manager>"))
		return
	}
	tgID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		b.send(tgbotapi.NewMessage(chatID, "Некорректный telegram_id."))
		return
	}
	role := users.Role(fields[1])
	if role != users.RoleAdmin && role != users.RoleManager {
		b.send(tgbotapi.NewMessage(chatID, "Роль может быть admin или manager."))
		return
	}
	target, err := b.users.GetByTelegramID(ctx, tgID)
	if err != nil {
		b.log.Error("load user failed", "tg_id", tgID, "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось получить пользователя."))
		return
	}
	if target == nil {
		b.send(tgbotapi.NewMessage(chatID, "Пользователь ещё не запускал бота."))
		return
	}
	if _, err := b.users.SetRole(ctx, tgID, role); err != nil {
		b.log.Error("set role failed", "tg_id", tgID, "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось сменить роль."))
		return
	}
	b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Роль пользователя %d теперь %s.", tgID, role)))
}

// checkIntake прогоняет тестовую заявку через точку приёма заказов.
// Заявка настоящая: в базе появится заказ, его стоит сразу отменить.
func (b *Bot) checkIntake(ctx context.Context, chatID int64) {
	if b.intake == nil {
		b.send(tgbotapi.NewMessage(chatID, "Точка приёма заказов не настроена."))
		return
	}
	number, err := b.intake.Submit(ctx, orders.Submission{
		Customer: orders.Customer{Name: "Проверка связи", Phone: "+70000000000", Email: "intake-check@tmk.local"},
		Order: orders.Body{
			Items:   []orders.Item{{ProductID: "intake-check", Name: "Проверочная позиция", Quantity: 1, Unit: "meters"}},
			Comment: "тестовая заявка из бота",
		},
	})
	if err != nil {
		b.log.Error("intake check failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Приём заказов не отвечает: "+err.Error()))
		return
	}
	b.send(tgbotapi.NewMessage(chatID,
		fmt.Sprintf("Приём заказов работает, создан тестовый заказ %s. Не забудьте его отменить.", number)))
}

// askStatusReason запоминает номер и целевой статус и ждёт причину текстом.
func (b *Bot) askStatusReason(ctx context.Context, chatID int64, number, status string) {
	if !orders.ValidStatus(status) {
		b.send(tgbotapi.NewMessage(chatID, "Неизвестный статус."))
		return
	}
	_ = b.states.Set(ctx, chatID, dialog.StateAwaitStatusReason, dialog.Payload{
		"number": number,
		"status": status,
	})
	m := tgbotapi.NewMessage(chatID,
		fmt.Sprintf("Перевожу заказ %s в «%s». Укажите причину (или «-», если без причины):", number, statusTitle(status)))
	m.ReplyMarkup = navKeyboard(false, true)
	b.send(m)
}

func (b *Bot) applyStatus(ctx context.Context, chatID int64, changedBy string, st *dialog.Item, reason string) {
	defer func() { _ = b.states.Reset(ctx, chatID) }()
	number, ok1 := dialog.GetString(st.Payload, "number")
	status, ok2 := dialog.GetString(st.Payload, "status")
	if !ok1 || !ok2 {
		b.send(tgbotapi.NewMessage(chatID, "Диалог потерялся, начните заново."))
		return
	}
	if reason == "-" {
		reason = ""
	}
	if err := b.orders.UpdateStatus(ctx, number, status, reason, changedBy); err != nil {
		b.log.Error("update status failed", "number", number, "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось сменить статус: "+err.Error()))
		return
	}
	b.send(tgbotapi.NewMessage(chatID,
		fmt.Sprintf("Готово: заказ %s теперь «%s».", number, statusTitle(status))))
	b.showOrderCard(ctx, chatID, number, true)
}

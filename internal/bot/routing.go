package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Quaxww/tmk-store/internal/dialog"
)

func (b *Bot) onMessage(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	b.handleText(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		u, err := b.currentUser(ctx, msg.From)
		if err != nil {
			b.send(tgbotapi.NewMessage(chatID, "Ошибка: не удалось сохранить профиль"))
			return
		}
		_ = b.states.Reset(ctx, chatID)
		if b.isAdmin(u) {
			m := tgbotapi.NewMessage(chatID, "Привет, админ! Заказы, поиск, статистика и выгрузка — в меню снизу.")
			m.ReplyMarkup = adminReplyKeyboard()
			b.send(m)
			return
		}
		m := tgbotapi.NewMessage(chatID, "Добро пожаловать в сервис заказов ТМК! Кнопки снизу — просмотр и поиск заказов.")
		m.ReplyMarkup = managerReplyKeyboard()
		b.send(m)

	case "help":
		b.send(tgbotapi.NewMessage(chatID,
			"Команды:\n/start — начать работу\n/orders — последние заказы\n/stats — статистика\n/help — помощь"))

	case "orders":
		b.showOrders(ctx, chatID)

	case "stats":
		b.showStats(ctx, chatID)

	case "role":
		u, err := b.currentUser(ctx, msg.From)
		if err != nil || !b.isAdmin(u) {
			b.send(tgbotapi.NewMessage(chatID, "Доступ запрещён."))
			return
		}
		b.assignRole(ctx, chatID, msg.CommandArguments())

	case "intake":
		u, err := b.currentUser(ctx, msg.From)
		if err != nil || !b.isAdmin(u) {
			b.send(tgbotapi.NewMessage(chatID, "Доступ запрещён."))
			return
		}
		b.checkIntake(ctx, chatID)

	default:
		b.send(tgbotapi.NewMessage(chatID, "Не знаю такую команду. Наберите /help"))
	}
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	u, err := b.currentUser(ctx, msg.From)
	if err != nil {
		b.log.Error("load user failed", "err", err)
		return
	}

	// Сначала кнопки меню — они обрывают любой текущий диалог.
	switch msg.Text {
	case btnOrders:
		_ = b.states.Reset(ctx, chatID)
		b.showOrders(ctx, chatID)
		return
	case btnSearch:
		_ = b.states.Set(ctx, chatID, dialog.StateAwaitSearch, dialog.Payload{})
		m := tgbotapi.NewMessage(chatID, "Введите номер заказа, ФИО, email или телефон:")
		m.ReplyMarkup = navKeyboard(false, true)
		b.send(m)
		return
	case btnStats:
		_ = b.states.Reset(ctx, chatID)
		b.showStats(ctx, chatID)
		return
	case btnExport:
		if !b.isAdmin(u) {
			b.send(tgbotapi.NewMessage(chatID, "Доступ запрещён."))
			return
		}
		b.exportOrders(ctx, chatID)
		return
	}

	// Дальше — по состоянию диалога.
	st, err := b.states.Get(ctx, chatID)
	if err != nil {
		b.log.Error("load state failed", "err", err)
		return
	}
	switch st.State {
	case dialog.StateAwaitSearch:
		b.runSearch(ctx, chatID, strings.TrimSpace(msg.Text))
	case dialog.StateAwaitStatusReason:
		if !b.isAdmin(u) {
			b.send(tgbotapi.NewMessage(chatID, "Доступ запрещён."))
			_ = b.states.Reset(ctx, chatID)
			return
		}
		b.applyStatus(ctx, chatID, u.Username, st, strings.TrimSpace(msg.Text))
	default:
		b.send(tgbotapi.NewMessage(chatID, "Выберите действие в меню снизу или наберите /help"))
	}
}

func (b *Bot) onCallback(ctx context.Context, upd tgbotapi.Update) {
	cb := upd.CallbackQuery
	chatID := cb.Message.Chat.ID
	u, err := b.currentUser(ctx, cb.From)
	if err != nil {
		b.log.Error("load user failed", "err", err)
		return
	}
	data := cb.Data

	switch {
	case data == "nav:cancel":
		_ = b.states.Reset(ctx, chatID)
		b.answerCallback(cb, "Отменено", false)
		b.send(tgbotapi.NewMessage(chatID, "Действие отменено."))

	case data == "ord:list":
		b.answerCallback(cb, "", false)
		b.showOrders(ctx, chatID)

	case strings.HasPrefix(data, "ord:open:"):
		b.answerCallback(cb, "", false)
		b.showOrderCard(ctx, chatID, strings.TrimPrefix(data, "ord:open:"), b.isAdmin(u))

	case strings.HasPrefix(data, "ord:status:"):
		if !b.isAdmin(u) {
			b.answerCallback(cb, "Доступ запрещён", true)
			return
		}
		rest := strings.TrimPrefix(data, "ord:status:")
		parts := strings.SplitN(rest, ":", 2)
		if len(parts) != 2 {
			b.answerCallback(cb, "Некорректный запрос", true)
			return
		}
		b.answerCallback(cb, "", false)
		b.askStatusReason(ctx, chatID, parts[0], parts[1])

	default:
		b.answerCallback(cb, "", false)
	}
}

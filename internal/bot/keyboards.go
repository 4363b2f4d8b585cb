package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Quaxww/tmk-store/internal/domain/orders"
)

// Кнопки нижней панели.
const (
	btnOrders = "📦 Заказы"
	btnSearch = "🔍 Поиск"
	btnStats  = "📊 Статистика"
	btnExport = "📤 Экспорт в Excel"
)

// adminReplyKeyboard Нижняя панель для админа
func adminReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnOrders), tgbotapi.NewKeyboardButton(btnSearch)},
			{tgbotapi.NewKeyboardButton(btnStats), tgbotapi.NewKeyboardButton(btnExport)},
		},
	}
}

func managerReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnOrders), tgbotapi.NewKeyboardButton(btnSearch)},
			{tgbotapi.NewKeyboardButton(btnStats)},
		},
	}
}

func navKeyboard(back bool, cancel bool) tgbotapi.InlineKeyboardMarkup {
	row := []tgbotapi.InlineKeyboardButton{}
	if back {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "nav:back"))
	}
	if cancel {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("✖️ Отменить", "nav:cancel"))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// ordersKeyboard — по кнопке на каждый заказ из списка.
func ordersKeyboard(list []orders.Order) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list))
	for _, o := range list {
		label := fmt.Sprintf("%s %s — %s", statusIcon(o.Status), o.Number, o.Customer.Name)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "ord:open:"+o.Number),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// orderCardKeyboard — действия над заказом; смена статуса только админу.
func orderCardKeyboard(o *orders.Order, admin bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	if admin {
		row := []tgbotapi.InlineKeyboardButton{}
		for _, st := range orders.Statuses {
			if st == o.Status {
				continue
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				statusIcon(st)+" "+statusTitle(st),
				fmt.Sprintf("ord:status:%s:%s", o.Number, st),
			))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ К списку", "ord:list"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func statusIcon(status string) string {
	switch status {
	case orders.StatusNew:
		return "🆕"
	case orders.StatusProcessing:
		return "⏳"
	case orders.StatusDone:
		return "✅"
	case orders.StatusCancelled:
		return "❌"
	default:
		return "❔"
	}
}

func statusTitle(status string) string {
	switch status {
	case orders.StatusNew:
		return "Новый"
	case orders.StatusProcessing:
		return "В работе"
	case orders.StatusDone:
		return "Выполнен"
	case orders.StatusCancelled:
		return "Отменён"
	default:
		return status
	}
}

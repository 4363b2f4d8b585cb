package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"github.com/Quaxww/tmk-store/internal/domain/orders"
)

// exportOrders выгружает все заказы одной Excel-книгой в чат.
func (b *Bot) exportOrders(ctx context.Context, chatID int64) {
	list, err := b.orders.All(ctx)
	if err != nil {
		b.log.Error("export: load orders failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось выгрузить заказы."))
		return
	}
	if len(list) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Заказов пока нет."))
		return
	}

	f, err := buildOrdersWorkbook(list)
	if err != nil {
		b.log.Error("export: build workbook failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось собрать файл."))
		return
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		b.log.Error("export: write workbook failed", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось собрать файл."))
		return
	}

	name := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: buf.Bytes()})
	doc.Caption = fmt.Sprintf("Выгрузка заказов: %d шт.", len(list))
	b.send(doc)
}

var exportHeaders = []any{
	"Номер заказа", "ФИО", "Телефон", "Email", "Компания",
	"Адрес", "Комментарий", "Статус", "Позиций", "Сумма", "Дата создания",
}

// buildOrdersWorkbook собирает книгу с одной строкой на заказ.
func buildOrdersWorkbook(list []orders.Order) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	for i, o := range list {
		row := []any{
			o.Number,
			o.Customer.Name,
			o.Customer.Phone,
			o.Customer.Email,
			o.Customer.Company,
			o.Delivery.Address,
			o.Comment,
			statusTitle(o.Status),
			len(o.Items),
			o.Total,
			o.CreatedAt.Format("02.01.2006 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

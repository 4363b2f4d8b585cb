package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Quaxww/tmk-store/internal/dialog"
	"github.com/Quaxww/tmk-store/internal/domain/orders"
	"github.com/Quaxww/tmk-store/internal/domain/users"
)

// Bot — Telegram-витрина заказов: просмотр, поиск, статистика и
// управление статусами для админов.
type Bot struct {
	api       *tgbotapi.BotAPI
	log       *slog.Logger
	users     *users.Repo
	states    *dialog.Repo
	orders    *orders.Repo
	intake    *orders.Client
	adminChat int64
}

func New(api *tgbotapi.BotAPI, log *slog.Logger,
	usersRepo *users.Repo, statesRepo *dialog.Repo,
	ordersRepo *orders.Repo, intake *orders.Client, adminChatID int64) *Bot {

	return &Bot{
		api: api, log: log, users: usersRepo, states: statesRepo,
		orders: ordersRepo, intake: intake, adminChat: adminChatID,
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil {
				b.onMessage(ctx, upd)
			} else if upd.CallbackQuery != nil {
				b.onCallback(ctx, upd)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string, alert bool) {
	resp := tgbotapi.NewCallback(cb.ID, text)
	resp.ShowAlert = alert
	if _, err := b.api.Request(resp); err != nil {
		b.log.Error("answer callback failed", "err", err)
	}
}

// currentUser достаёт профиль; если пользователя ещё нет — регистрирует
// менеджером, а для настроенного админ-чата сразу админом.
func (b *Bot) currentUser(ctx context.Context, from *tgbotapi.User) (*users.User, error) {
	role := users.RoleManager
	if from.ID == b.adminChat {
		role = users.RoleAdmin
	}
	return b.users.UpsertFromTelegram(ctx, users.Telegram{
		ID:        from.ID,
		Username:  from.UserName,
		FirstName: from.FirstName,
		LastName:  from.LastName,
	}, role)
}

func (b *Bot) isAdmin(u *users.User) bool {
	return u != nil && u.Role == users.RoleAdmin
}

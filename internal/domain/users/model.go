package users

import "time"

type Role string

const (
	RoleManager Role = "manager" // просмотр и поиск заказов
	RoleAdmin   Role = "admin"   // плюс смена статусов и выгрузки
)

type User struct {
	ID         int64
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
	Role       Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Telegram — профиль пользователя из апдейта Telegram.
type Telegram struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

package domain

import "time"

// User is a renter or an owner. Owners are simply users with listings.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// TelegramChat returns the linked Telegram chat, if any.
func (u *User) TelegramChat() (int64, bool) {
	if u == nil || u.TelegramChatID == nil || *u.TelegramChatID == 0 {
		return 0, false
	}
	return *u.TelegramChatID, true
}

type CreateUserInput struct {
	Username       string
	Email          string
	TelegramChatID *int64
}

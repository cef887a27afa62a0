package domain

import "time"

// User учетная запись в справочнике пользователей
type User struct {
	ID    int64
	Name  string
	Email string

	CreatedAt time.Time
	UpdatedAt time.Time
}

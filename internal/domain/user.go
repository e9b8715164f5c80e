package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	CreatedAt    time.Time
}

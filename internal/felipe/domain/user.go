package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt encoded, salt included
	FullName     string
	Position     string
	Fiscalia     string
	Active       bool
	CreatedAt    time.Time
}

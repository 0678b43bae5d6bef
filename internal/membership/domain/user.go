package domain

import "time"

type User struct {
	ID            string
	Name          string
	Email         string
	Company       string
	IsActive      bool
	ApplicationID string
	PasswordHash  string // argon2 encoded
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

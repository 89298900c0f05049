package models

import "time"

// AdminAccount is the single stored admin credential.
type AdminAccount struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthRequest is the POST /api/auth body.
type AuthRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
}

package model

import (
	"time"
)

const (
	TableName  = "admin_accounts"
	EntityName = "admin_account"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
)

type AdminAccount struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

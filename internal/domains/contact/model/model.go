package model

import (
	"time"
)

const (
	TableName  = "contact_messages"
	EntityName = "contact_message"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldSubject  = "subject"
	FieldMessage  = "message"
)

type ContactMessage struct {
	ID        int64     `db:"id"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldGuestName       = "guest_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldSpecialRequests = "special_requests"
)

const (
	DefaultGuests = 1
)

type Booking struct {
	ID              int64     `db:"id"`
	RoomID          int64     `db:"room_id"`
	GuestName       string    `db:"guest_name"`
	Email           string    `db:"email"`
	Phone           string    `db:"phone"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Guests          int       `db:"guests"`
	SpecialRequests string    `db:"special_requests"`
	CreatedAt       time.Time `db:"created_at"`
}

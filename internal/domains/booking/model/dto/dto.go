package dto

import (
	"fmt"
	"time"

	"atrium/internal/domains/booking/model"
	"atrium/shared/constant"
)

type CreateBookingRequest struct {
	RoomID          int64  `json:"room"             validate:"required,gt=0"`
	GuestName       string `json:"guest_name"       validate:"required,max=100"`
	Email           string `json:"email"            validate:"required,email"`
	Phone           string `json:"phone"            validate:"required,max=40"`
	CheckIn         string `json:"check_in"         validate:"required,datetime=2006-01-02"`
	CheckOut        string `json:"check_out"        validate:"required,datetime=2006-01-02"`
	Guests          int    `json:"guests"           validate:"omitempty,gte=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to parse check-in date: %w", err)
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to parse check-out date: %w", err)
	}

	guests := c.Guests
	if guests == 0 {
		guests = model.DefaultGuests
	}

	return model.Booking{
		RoomID:          c.RoomID,
		GuestName:       c.GuestName,
		Email:           c.Email,
		Phone:           c.Phone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          guests,
		SpecialRequests: c.SpecialRequests,
	}, nil
}

type BookingResponse struct {
	ID              int64  `json:"id"`
	RoomID          int64  `json:"room"`
	GuestName       string `json:"guest_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
	CreatedAt       string `json:"created_at"`
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.RoomID = model.RoomID
	b.GuestName = model.GuestName
	b.Email = model.Email
	b.Phone = model.Phone
	b.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	b.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	b.Guests = model.Guests
	b.SpecialRequests = model.SpecialRequests
	b.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

func FromModels(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

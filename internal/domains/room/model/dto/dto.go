package dto

import (
	"strconv"

	"atrium/internal/domains/room/model"
	"atrium/shared/constant"
)

type CreateRoomRequest struct {
	Name          string   `json:"name"            validate:"required,max=100"`
	Slug          string   `json:"slug"            validate:"omitempty,max=120"`
	Description   string   `json:"description"     validate:"omitempty"`
	PricePerNight float64  `json:"price_per_night" validate:"required,gt=0"`
	RoomType      string   `json:"room_type"       validate:"required,oneof=standard executive presidential"`
	ImageURL      string   `json:"image_url"       validate:"omitempty,url"`
	Amenities     []string `json:"amenities"       validate:"omitempty"`
	Occupancy     int      `json:"occupancy"       validate:"omitempty,gte=1"`
	BedType       string   `json:"bed_type"        validate:"omitempty,max=100"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	occupancy := c.Occupancy
	if occupancy == 0 {
		occupancy = model.DefaultOccupancy
	}

	bedType := c.BedType
	if bedType == constant.Empty {
		bedType = model.DefaultBedType
	}

	return model.Room{
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		PricePerNight: c.PricePerNight,
		RoomType:      c.RoomType,
		ImageURL:      c.ImageURL,
		Amenities:     model.Amenities(c.Amenities),
		Occupancy:     occupancy,
		BedType:       bedType,
	}
}

type UpdateRoomRequest struct {
	Name          string          `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Slug          string          `db:"slug"            json:"slug"            validate:"omitempty,max=120"`
	Description   string          `db:"description"     json:"description"     validate:"omitempty"`
	PricePerNight *float64        `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	RoomType      string          `db:"room_type"       json:"room_type"       validate:"omitempty,oneof=standard executive presidential"`
	ImageURL      string          `db:"image_url"       json:"image_url"       validate:"omitempty,url"`
	Amenities     model.Amenities `db:"amenities"       json:"amenities"       validate:"omitempty"`
	Occupancy     *int            `db:"occupancy"       json:"occupancy"       validate:"omitempty,gte=1"`
	BedType       string          `db:"bed_type"        json:"bed_type"        validate:"omitempty,max=100"`
}

type RoomResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	PricePerNight string   `json:"price_per_night"`
	RoomType      string   `json:"room_type"`
	ImageURL      string   `json:"image_url"`
	Amenities     []string `json:"amenities"`
	Occupancy     int      `json:"occupancy"`
	BedType       string   `json:"bed_type"`
	CreatedAt     string   `json:"created_at"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.PricePerNight = strconv.FormatFloat(model.PricePerNight, 'f', 2, 64)
	r.RoomType = model.RoomType
	r.ImageURL = model.ImageURL
	r.Amenities = model.Amenities
	r.Occupancy = model.Occupancy
	r.BedType = model.BedType
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

func FromModels(models []model.Room) []RoomResponse {
	responses := make([]RoomResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

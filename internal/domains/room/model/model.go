package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldName          = "name"
	FieldSlug          = "slug"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldRoomType      = "room_type"
	FieldImageURL      = "image_url"
	FieldAmenities     = "amenities"
	FieldOccupancy     = "occupancy"
	FieldBedType       = "bed_type"

	ConstraintSlugUnique = "rooms_slug_key"
)

const (
	RoomTypeStandard     = "standard"
	RoomTypeExecutive    = "executive"
	RoomTypePresidential = "presidential"
)

const (
	DefaultOccupancy = 2
	DefaultBedType   = "King Size Bed"
)

// Amenities is stored as a jsonb array of feature names.
type Amenities []string

func (a Amenities) Value() (driver.Value, error) {
	if a == nil {
		a = Amenities{}
	}

	value, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amenities: %w", err)
	}

	return value, nil
}

func (a *Amenities) Scan(src any) error {
	if src == nil {
		*a = Amenities{}

		return nil
	}

	var raw []byte

	switch value := src.(type) {
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return fmt.Errorf("unsupported amenities source type %T", src)
	}

	if err := json.Unmarshal(raw, a); err != nil {
		return fmt.Errorf("failed to unmarshal amenities: %w", err)
	}

	return nil
}

type Room struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Slug          string    `db:"slug"`
	Description   string    `db:"description"`
	PricePerNight float64   `db:"price_per_night"`
	RoomType      string    `db:"room_type"`
	ImageURL      string    `db:"image_url"`
	Amenities     Amenities `db:"amenities"`
	Occupancy     int       `db:"occupancy"`
	BedType       string    `db:"bed_type"`
	CreatedAt     time.Time `db:"created_at"`
}

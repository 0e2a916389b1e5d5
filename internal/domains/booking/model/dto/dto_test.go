package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"atrium/internal/domains/booking/model"
	"atrium/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr bool
		check   func(t *testing.T, booking model.Booking)
	}{
		{
			name: "valid dates and defaults",
			req: dto.CreateBookingRequest{
				RoomID:    1,
				GuestName: "Ada Lovelace",
				Email:     "ada@example.com",
				CheckIn:   "2026-09-01",
				CheckOut:  "2026-09-03",
			},
			check: func(t *testing.T, booking model.Booking) {
				assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), booking.CheckIn)
				assert.Equal(t, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), booking.CheckOut)
				assert.Equal(t, model.DefaultGuests, booking.Guests)
				assert.Equal(t, "", booking.SpecialRequests)
			},
		},
		{
			name: "explicit guests preserved",
			req: dto.CreateBookingRequest{
				RoomID:   1,
				CheckIn:  "2026-09-01",
				CheckOut: "2026-09-03",
				Guests:   4,
			},
			check: func(t *testing.T, booking model.Booking) {
				assert.Equal(t, 4, booking.Guests)
			},
		},
		{
			name: "malformed check-in date",
			req: dto.CreateBookingRequest{
				RoomID:   1,
				CheckIn:  "01-09-2026",
				CheckOut: "2026-09-03",
			},
			wantErr: true,
		},
		{
			name: "malformed check-out date",
			req: dto.CreateBookingRequest{
				RoomID:   1,
				CheckIn:  "2026-09-01",
				CheckOut: "next friday",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := tt.req.ToModel()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			tt.check(t, booking)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	created := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)

	booking := model.Booking{
		ID:        5,
		RoomID:    2,
		GuestName: "Grace Hopper",
		Email:     "grace@example.com",
		CheckIn:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Guests:    2,
		CreatedAt: created,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, int64(5), res.ID)
	assert.Equal(t, int64(2), res.RoomID)
	assert.Equal(t, "2026-09-01", res.CheckIn)
	assert.Equal(t, "2026-09-03", res.CheckOut)
	assert.Equal(t, "2026-08-30T10:30:00Z", res.CreatedAt)
}

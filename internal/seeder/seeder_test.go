package seeder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	adminMocks "atrium/internal/domains/admin/mocks"
	roomMocks "atrium/internal/domains/room/mocks"
	"atrium/internal/domains/room/model/dto"
	"atrium/internal/seeder"
	"atrium/shared/failure"
)

func seedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Username = "admin"
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Password = "HotelAdmin2026!"

	return cfg
}

func TestSeeder_Run_FreshDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := roomMocks.NewMockRoomService(ctrl)
	mockAdmins := adminMocks.NewMockAdminAccountService(ctrl)
	mockOtel := mocks.NewOtel()

	seeded := []string{}

	mockRooms.EXPECT().
		GetByName(gomock.Any(), gomock.Any()).
		Return(dto.RoomResponse{}, failure.NotFound("room not found")).
		Times(3)
	mockRooms.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error) {
			seeded = append(seeded, req.Name)

			return dto.RoomResponse{Name: req.Name}, nil
		}).
		Times(3)
	mockAdmins.EXPECT().
		Ensure(gomock.Any(), "admin", "admin@example.com", "HotelAdmin2026!").
		Return(true, nil)

	s := seeder.New(mockRooms, mockAdmins, seedConfig(), mockOtel)

	err := s.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Standard Room", "Executive Suite", "Presidential Suite"}, seeded)
}

func TestSeeder_Run_ExistingRoomsRefreshed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := roomMocks.NewMockRoomService(ctrl)
	mockAdmins := adminMocks.NewMockAdminAccountService(ctrl)
	mockOtel := mocks.NewOtel()

	mockRooms.EXPECT().
		GetByName(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (dto.RoomResponse, error) {
			return dto.RoomResponse{ID: 7, Name: name, Slug: "kept-slug", Amenities: []string{"Stale Amenity"}}, nil
		}).
		Times(3)
	mockRooms.EXPECT().
		Update(gomock.Any(), gomock.Any(), int64(7)).
		DoAndReturn(func(_ context.Context, req dto.UpdateRoomRequest, _ int64) error {
			assert.Empty(t, req.Name)
			assert.Empty(t, req.Slug)
			assert.NotNil(t, req.PricePerNight)
			assert.NotEmpty(t, req.Amenities)
			assert.NotContains(t, req.Amenities, "Stale Amenity")

			return nil
		}).
		Times(3)
	mockAdmins.EXPECT().
		Ensure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)

	s := seeder.New(mockRooms, mockAdmins, seedConfig(), mockOtel)

	assert.NoError(t, s.Run(context.Background()))
}

func TestSeeder_Run_MissingAdminCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := roomMocks.NewMockRoomService(ctrl)
	mockAdmins := adminMocks.NewMockAdminAccountService(ctrl)
	mockOtel := mocks.NewOtel()

	mockRooms.EXPECT().
		GetByName(gomock.Any(), gomock.Any()).
		Return(dto.RoomResponse{ID: 1}, nil).
		Times(3)
	mockRooms.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(3)

	cfg := seedConfig()
	cfg.Admin.Password = ""

	s := seeder.New(mockRooms, mockAdmins, cfg, mockOtel)

	assert.Error(t, s.Run(context.Background()))
}

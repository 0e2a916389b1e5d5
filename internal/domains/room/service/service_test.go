package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	roomMocks "atrium/internal/domains/room/mocks"
	"atrium/internal/domains/room/model"
	"atrium/internal/domains/room/model/dto"
	"atrium/internal/domains/room/service"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
)

func slugConflict() *pq.Error {
	return &pq.Error{Code: "23505", Constraint: model.ConstraintSlugUnique}
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
		wantSlug  string
	}{
		{
			name: "successful creation derives slug from name",
			req: dto.CreateRoomRequest{
				Name:          "Standard Room",
				PricePerNight: 120,
				RoomType:      model.RoomTypeStandard,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
						assert.Equal(t, "standard-room", room.Slug)
						assert.Equal(t, model.DefaultOccupancy, room.Occupancy)
						assert.Equal(t, model.DefaultBedType, room.BedType)

						room.ID = 1

						return room, nil
					})
			},
			wantSlug: "standard-room",
		},
		{
			name: "slug conflict retried with numeric suffix",
			req: dto.CreateRoomRequest{
				Name:          "Standard Room",
				PricePerNight: 120,
				RoomType:      model.RoomTypeStandard,
			},
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().
						Insert(gomock.Any(), gomock.Any()).
						Return(model.Room{}, slugConflict()),
					mockRepo.EXPECT().
						Insert(gomock.Any(), gomock.Any()).
						Return(model.Room{}, slugConflict()),
					mockRepo.EXPECT().
						Insert(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
							assert.Equal(t, "standard-room-2", room.Slug)

							room.ID = 3

							return room, nil
						}),
				)
			},
			wantSlug: "standard-room-2",
		},
		{
			name: "explicit slug is used as is",
			req: dto.CreateRoomRequest{
				Name:          "Standard Room",
				Slug:          "budget-room",
				PricePerNight: 120,
				RoomType:      model.RoomTypeStandard,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
						assert.Equal(t, "budget-room", room.Slug)

						room.ID = 4

						return room, nil
					})
			},
			wantSlug: "budget-room",
		},
		{
			name: "repository error is not retried",
			req: dto.CreateRoomRequest{
				Name:          "Standard Room",
				PricePerNight: 120,
				RoomType:      model.RoomTypeStandard,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSlug, res.Slug)
		})
	}
}

func TestRoomService_Create_SlugExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(model.Room{}, slugConflict()).
		Times(20)

	_, err := svc.Create(context.Background(), dto.CreateRoomRequest{
		Name:          "Standard Room",
		PricePerNight: 120,
		RoomType:      model.RoomTypeStandard,
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{}).
		Return([]model.Room{
			{ID: 2, Name: "Executive Suite", Slug: "executive-suite", PricePerNight: 250},
			{ID: 1, Name: "Standard Room", Slug: "standard-room", PricePerNight: 120},
		}, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "250.00", res[0].PricePerNight)
	assert.Equal(t, "120.00", res[1].PricePerNight)
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: 1, Name: "Standard Room"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), 1)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	price := 150.0

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update keeps slug untouched",
			req:  dto.UpdateRoomRequest{Name: "Deluxe Room", PricePerNight: &price},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: 1, Name: "Standard Room", Slug: "standard-room"}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.NotContains(t, fields, model.FieldSlug)
						assert.Equal(t, "Deluxe Room", fields[model.FieldName])
						assert.Equal(t, 150.0, fields[model.FieldPricePerNight])

						return nil
					})
			},
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomRequest{Name: "Deluxe Room"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "slug conflict surfaces as conflict",
			req:  dto.UpdateRoomRequest{Slug: "executive-suite"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: 1, Slug: "standard-room"}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(slugConflict())
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, 1)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room still referenced by bookings",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23503"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 1)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	contactMocks "atrium/internal/domains/contact/mocks"
	"atrium/internal/domains/contact/model"
	"atrium/internal/domains/contact/model/dto"
	"atrium/internal/domains/contact/service"
	gDto "atrium/shared/dto"
)

func TestContactMessageService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContactMessage(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateContactMessageRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateContactMessageRequest{
				FullName: "Ada Lovelace",
				Email:    "ada@example.com",
				Subject:  "Late check-out",
				Message:  "Is a 2pm check-out possible?",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
						assert.Equal(t, "Late check-out", msg.Subject)

						msg.ID = 1

						return msg, nil
					})
			},
		},
		{
			name: "repository error",
			req: dto.CreateContactMessageRequest{
				FullName: "Ada Lovelace",
				Email:    "ada@example.com",
				Subject:  "Late check-out",
				Message:  "Is a 2pm check-out possible?",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.ContactMessage{}, errors.New("database error"))
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
			assert.Equal(t, int64(1), res.ID)
		})
	}
}

func TestContactMessageService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContactMessage(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: "created_at", SortDir: gDto.SortDirDesc}, gDto.FilterGroup{}).
		Return([]model.ContactMessage{
			{ID: 2, Subject: "Parking"},
			{ID: 1, Subject: "Late check-out"},
		}, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, int64(2), res[0].ID)
}

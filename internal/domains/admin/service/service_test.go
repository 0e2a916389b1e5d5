package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	adminMocks "atrium/internal/domains/admin/mocks"
	"atrium/internal/domains/admin/model"
	"atrium/internal/domains/admin/service"
	"atrium/shared/password"
)

func TestAdminAccountService_Ensure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := adminMocks.NewMockAdminAccount(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("creates account with hashed password", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, account model.AdminAccount) (model.AdminAccount, error) {
				assert.NotEmpty(t, account.ID)
				assert.Equal(t, "admin", account.Username)
				assert.NotEqual(t, "secret", account.PasswordHash)
				assert.NoError(t, password.Verify("secret", account.PasswordHash))

				return account, nil
			})

		created, err := svc.Ensure(context.Background(), "admin", "admin@example.com", "secret")

		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("skips when account already exists", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		created, err := svc.Ensure(context.Background(), "admin", "admin@example.com", "secret")

		assert.NoError(t, err)
		assert.False(t, created)
	})
}

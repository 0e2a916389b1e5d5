package service

import (
	"context"
	"fmt"

	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/admin/model"
	"atrium/internal/domains/admin/repository"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/password"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AdminAccount interface {
	Ensure(ctx context.Context, username, email, plainPassword string) (bool, error)
}

type serviceImpl struct {
	repo repository.AdminAccount
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.AdminAccount, cfg *config.Config, otel otel.Otel) AdminAccount {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Ensure creates the administrative account when no account with the given
// username exists yet. It reports whether a new account was created.
func (s *serviceImpl) Ensure(ctx context.Context, username, email, plainPassword string) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ensure")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsername,
				Value:    username,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin account exists")

		return false, fmt.Errorf("failed to check if admin account exists: %w", err)
	}

	if exist {
		log.Warn().Str("username", username).Msg("Admin account already exists, skipping")

		return false, nil
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")

		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	account := model.AdminAccount{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if _, err := s.repo.Insert(ctx, account); err != nil {
		log.Error().Err(err).Msg("failed to create admin account")

		return false, fmt.Errorf("failed to create admin account: %w", err)
	}

	return true, nil
}

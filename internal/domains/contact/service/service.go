package service

import (
	"context"
	"fmt"

	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/contact/model/dto"
	"atrium/internal/domains/contact/repository"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"

	"github.com/rs/zerolog/log"
)

// ContactMessage accepts messages from the public contact form. Messages are
// write-only through the API; GetAll serves staff tooling, not a public route.
type ContactMessage interface {
	Create(ctx context.Context, req dto.CreateContactMessageRequest) (dto.ContactMessageResponse, error)
	GetAll(ctx context.Context) ([]dto.ContactMessageResponse, error)
}

type serviceImpl struct {
	repo repository.ContactMessage
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.ContactMessage, cfg *config.Config, otel otel.Otel) ContactMessage {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactMessageRequest) (res dto.ContactMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	stored, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create contact message")

		return res, fmt.Errorf("failed to create contact message: %w", err)
	}

	res.FromModel(stored)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ContactMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, fmt.Errorf("failed to get contact messages: %w", err)
	}

	res = make([]dto.ContactMessageResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

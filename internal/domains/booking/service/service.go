package service

import (
	"context"
	"fmt"

	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/booking/model"
	"atrium/internal/domains/booking/model/dto"
	"atrium/internal/domains/booking/repository"
	roomModel "atrium/internal/domains/room/model"
	roomRepo "atrium/internal/domains/room/repository"
	"atrium/shared"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

// Create stores a new booking after checking the referenced room exists.
// Overlapping stays for the same room are deliberately allowed.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString("room does not exist") //nolint:wrapcheck
	}

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) //nolint:wrapcheck
	}

	stored, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(stored)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

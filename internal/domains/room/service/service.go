package service

import (
	"context"
	"fmt"

	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/room/model"
	"atrium/internal/domains/room/model/dto"
	"atrium/internal/domains/room/repository"
	"atrium/shared"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	gRepo "atrium/shared/repository"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
)

// maxSlugAttempts bounds the numeric suffixes tried when the slug derived
// from a room name is already taken.
const maxSlugAttempts = 20

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	GetByName(ctx context.Context, name string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Room
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Room, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Create stores a new room. When the request carries no slug one is derived
// from the name; insert conflicts on the slug column are retried with numeric
// suffixes until a free slug is found or the attempt limit is reached.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room := req.ToModel()

	base := room.Slug
	if base == constant.Empty {
		base = slug.Make(room.Name)
	}

	candidate := base

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		room.Slug = candidate

		stored, insertErr := s.repo.Insert(ctx, room)
		if insertErr == nil {
			res.FromModel(stored)

			return res, nil
		}

		if !gRepo.IsUniqueViolation(insertErr, model.ConstraintSlugUnique) {
			log.Error().Err(insertErr).Msg("failed to create room")

			return res, fmt.Errorf("failed to create room: %w", insertErr)
		}

		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}

	log.Error().Str("slug", base).Msg("exhausted slug candidates for room")

	return res, failure.Conflict("failed to allocate a unique slug for room") //nolint:wrapcheck
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

// GetByName looks a room up by its exact name. The seeding utility uses it
// to decide between inserting and refreshing a row.
func (s *serviceImpl) GetByName(ctx context.Context, name string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByName")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Value:    name,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room by name")

		return res, fmt.Errorf("failed to get room by name: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

// Update patches the non-zero fields of req. The slug is left untouched
// unless the request carries a new one; a conflicting slug surfaces as a
// conflict instead of being suffixed, since renames are deliberate.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if current.ID == 0 {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if len(updatedFields) == 0 {
		return nil
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		if gRepo.IsUniqueViolation(err, model.ConstraintSlugUnique) {
			return failure.Conflict("room slug already in use") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

// Delete removes a room. Rooms that still have bookings are protected by a
// foreign key and reported as a conflict.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return failure.Conflict("room still has bookings") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/contact/model"
	gDto "atrium/shared/dto"
	gRepo "atrium/shared/repository"
)

type ContactMessage interface {
	Insert(ctx context.Context, model model.ContactMessage) (model.ContactMessage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ContactMessage, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ContactMessage]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ContactMessage {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContactMessage](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/admin/model"
	gDto "atrium/shared/dto"
	gRepo "atrium/shared/repository"
)

type AdminAccount interface {
	Insert(ctx context.Context, model model.AdminAccount) (model.AdminAccount, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AdminAccount]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AdminAccount {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AdminAccount](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=AccessRequest=MockAccessRequestRepository,Reply=MockReplyRepository

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/accessrequest/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/snapshot"
)

type AccessRequest interface {
	Insert(ctx context.Context, model model.AccessRequest) error
	GetByID(ctx context.Context, id string) (model.AccessRequest, bool)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.AccessRequest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Reply interface {
	Insert(ctx context.Context, model model.Reply) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reply, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AccessRequest]
}

func New(store snapshot.Store, otel otel.Otel) AccessRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AccessRequest](model.EntityName, model.TableName, model.FieldID, store, otel),
	}
}

type replyRepositoryImpl struct {
	gRepo.Repository[model.Reply]
}

func NewReply(store snapshot.Store, otel otel.Otel) Reply {
	return &replyRepositoryImpl{
		Repository: gRepo.NewRepository[model.Reply](model.ReplyEntityName, model.ReplyTableName, model.FieldID, store, otel),
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/ledger/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/snapshot"
)

type Charge interface {
	Insert(ctx context.Context, model model.Charge) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Charge, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type Invoice interface {
	Insert(ctx context.Context, model model.Invoice) error
	Save(ctx context.Context, model model.Invoice) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Invoice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Invoice, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	GetByID(ctx context.Context, id string) (model.Payment, bool)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Payment, error)
}

type chargeRepositoryImpl struct {
	gRepo.Repository[model.Charge]
}

func NewCharge(store snapshot.Store, otel otel.Otel) Charge {
	return &chargeRepositoryImpl{
		Repository: gRepo.NewRepository[model.Charge](model.ChargeEntityName, model.ChargeTableName, model.FieldID, store, otel),
	}
}

type invoiceRepositoryImpl struct {
	gRepo.Repository[model.Invoice]
}

func NewInvoice(store snapshot.Store, otel otel.Otel) Invoice {
	return &invoiceRepositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.InvoiceEntityName, model.InvoiceTableName, model.FieldID, store, otel),
	}
}

type paymentRepositoryImpl struct {
	gRepo.Repository[model.Payment]
}

func NewPayment(store snapshot.Store, otel otel.Otel) Payment {
	return &paymentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldID, store, otel),
	}
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/ledger/model"
	"frontdesk/internal/domains/ledger/model/dto"
	"frontdesk/internal/domains/ledger/repository"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/keylock"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	lockInvoiceNo        = "invoice-no"
	defaultInvoicePrefix = "INV"
	invoiceDateLayout    = "20060102"
)

type Ledger interface {
	ComputeCharges(ctx context.Context, booking bookingModel.Booking) ([]model.Charge, error)
	ListCharges(ctx context.Context, bookingID string) ([]dto.ChargeResponse, error)
	AddCharge(ctx context.Context, bookingID string, req dto.AddChargeRequest) (dto.ChargeResponse, error)
	IssueInvoice(ctx context.Context, bookingID string) (res dto.InvoiceResponse, created bool, err error)
	GetInvoice(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
	RebillInvoice(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
	ReconcileInvoiceStatus(ctx context.Context, invoice model.Invoice) (model.Invoice, error)
	ReconcileAll(ctx context.Context) (int, error)
	RecordPayment(ctx context.Context, bookingID string, req dto.RecordPaymentRequest) (dto.PaymentResponse, error)
	VoidPayment(ctx context.Context, paymentID string, req dto.VoidPaymentRequest) (dto.PaymentResponse, error)
	ListPayments(ctx context.Context, bookingID string) ([]dto.PaymentResponse, error)
	PaidAmount(ctx context.Context, bookingID string) (decimal.Decimal, error)
}

type serviceImpl struct {
	chargeRepo   repository.Charge
	invoiceRepo  repository.Invoice
	paymentRepo  repository.Payment
	bookingRepo  bookingRepo.Booking
	roomRepo     roomRepo.Room
	roomTypeRepo roomRepo.RoomType
	locks        *keylock.KeyedMutex
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	chargeRepo repository.Charge,
	invoiceRepo repository.Invoice,
	paymentRepo repository.Payment,
	bookingRepo bookingRepo.Booking,
	roomRepo roomRepo.Room,
	roomTypeRepo roomRepo.RoomType,
	locks *keylock.KeyedMutex,
	cfg *config.Config,
	otel otel.Otel,
) Ledger {
	return &serviceImpl{
		chargeRepo:   chargeRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		locks:        locks,
		cfg:          cfg,
		otel:         otel,
	}
}

// ComputeCharges returns the derived stay charge followed by the booking's
// unbilled ad hoc charges in creation order. A room or room type that cannot
// be resolved only drops the stay charge.
func (s *serviceImpl) ComputeCharges(ctx context.Context, booking bookingModel.Booking) (res []model.Charge, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ComputeCharges")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = make([]model.Charge, 0)

	if stay, ok := s.stayCharge(ctx, booking); ok {
		res = append(res, stay)
	}

	adhoc, err := s.chargeRepo.GetAll(ctx, gDto.QueryParams{}, unbilled(booking.ID))
	if err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to get unbilled charges")

		return nil, fmt.Errorf("failed to get unbilled charges: %w", err)
	}

	return append(res, adhoc...), nil
}

func (s *serviceImpl) ListCharges(ctx context.Context, bookingID string) (res []dto.ChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListCharges")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, ok := s.bookingRepo.GetByID(ctx, bookingID)
	if !ok {
		return nil, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	charges := make([]model.Charge, 0)

	if stay, ok := s.stayCharge(ctx, booking); ok {
		charges = append(charges, stay)
	}

	stored, err := s.chargeRepo.GetAll(ctx, gDto.QueryParams{}, byBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get charges")

		return nil, fmt.Errorf("failed to get charges: %w", err)
	}

	return dto.FromCharges(append(charges, stored...)), nil
}

func (s *serviceImpl) AddCharge(ctx context.Context, bookingID string, req dto.AddChargeRequest) (res dto.ChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddCharge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	switch {
	case !model.IsCategory(req.Category):
		return res, failure.Validation("category", "is not supported") // nolint:wrapcheck
	case req.Quantity <= 0:
		return res, failure.Validation("quantity", "must be greater than zero") // nolint:wrapcheck
	case !req.UnitPrice.IsPositive():
		return res, failure.Validation("unit_price", "must be greater than zero") // nolint:wrapcheck
	case req.Amount != nil && !req.Amount.IsPositive():
		return res, failure.Validation("amount", "must be greater than zero") // nolint:wrapcheck
	}

	unlock := s.locks.Lock(bookingModel.LockKey(bookingID))
	defer unlock()

	booking, ok := s.bookingRepo.GetByID(ctx, bookingID)
	if !ok {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == bookingModel.StatusCancelled {
		return res, failure.Conflict("cannot add charges to a cancelled booking") // nolint:wrapcheck
	}

	amount := req.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
	if req.Amount != nil {
		amount = *req.Amount
	}

	charge := model.Charge{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Description: strings.TrimSpace(req.Description),
		Category:    model.Category(req.Category),
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Amount:      amount,
		Metadata:    gModel.NewMetadata(shared.ActorFromContext(ctx), timezone.Now()),
	}

	if err = s.chargeRepo.Insert(ctx, charge); err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to add charge")

		return res, fmt.Errorf("failed to add charge: %w", err)
	}

	res.FromModel(charge)

	return res, nil
}

// IssueInvoice returns the booking's invoice, creating it on the first call.
// created reports whether this call produced it.
func (s *serviceImpl) IssueInvoice(ctx context.Context, bookingID string) (res dto.InvoiceResponse, created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueInvoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, ok := s.bookingRepo.GetByID(ctx, bookingID)
	if !ok {
		return res, false, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	unlock := s.locks.Lock(bookingModel.LockKey(bookingID))
	defer unlock()

	invoice, err := s.invoiceRepo.Get(ctx, byBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, false, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID != constant.Empty {
		invoice, paid, err := s.reconcile(ctx, invoice)
		if err != nil {
			return res, false, err
		}

		res.FromModel(invoice, paid)

		return res, false, nil
	}

	charges, err := s.ComputeCharges(ctx, booking)
	if err != nil {
		return res, false, err
	}

	now := timezone.Now()
	user := shared.ActorFromContext(ctx)

	invoice = model.Invoice{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Lines:     make([]model.InvoiceLine, 0, len(charges)),
		TaxRate:   s.cfg.Ledger.TaxRate,
		IssuedAt:  now,
		Status:    model.InvoiceStatusPending,
		Metadata:  gModel.NewMetadata(user, now),
	}

	for _, charge := range charges {
		invoice.Lines = append(invoice.Lines, charge.Line())
	}

	invoice.Retotal()

	if err = s.insertNumbered(ctx, &invoice); err != nil {
		return res, false, err
	}

	if err = s.stamp(ctx, invoice.ID, charges, user, now); err != nil {
		if delErr := s.invoiceRepo.Delete(ctx, shared.FilterByID(invoice.ID, model.FieldID)); delErr != nil {
			log.Error().Err(delErr).Str("invoiceId", invoice.ID).Msg("failed to discard invoice after charge stamping failed")
		}

		return res, false, err
	}

	log.Info().Str("bookingId", bookingID).Str("invoiceNo", invoice.InvoiceNo).Str("total", invoice.Total.StringFixed(2)).Msg("invoice issued")

	invoice, paid, err := s.reconcile(ctx, invoice)
	if err != nil {
		return res, false, err
	}

	res.FromModel(invoice, paid)

	return res, true, nil
}

func (s *serviceImpl) GetInvoice(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetInvoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.locks.Lock(bookingModel.LockKey(bookingID))
	defer unlock()

	invoice, err := s.invoiceRepo.Get(ctx, byBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	invoice, paid, err := s.reconcile(ctx, invoice)
	if err != nil {
		return res, err
	}

	res.FromModel(invoice, paid)

	return res, nil
}

// RebillInvoice folds charges added after issuance into the existing invoice
// as new lines and re-totals it. Lines already billed are left untouched.
func (s *serviceImpl) RebillInvoice(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RebillInvoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.locks.Lock(bookingModel.LockKey(bookingID))
	defer unlock()

	invoice, err := s.invoiceRepo.Get(ctx, byBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	charges, err := s.chargeRepo.GetAll(ctx, gDto.QueryParams{}, unbilled(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get unbilled charges")

		return res, fmt.Errorf("failed to get unbilled charges: %w", err)
	}

	if len(charges) > 0 {
		now := timezone.Now()
		user := shared.ActorFromContext(ctx)

		previous := invoice
		invoice.Lines = slices.Clone(previous.Lines)

		for _, charge := range charges {
			invoice.Lines = append(invoice.Lines, charge.Line())
		}

		invoice.Retotal()
		invoice.Touch(user, now)

		if err = s.invoiceRepo.Save(ctx, invoice); err != nil {
			log.Error().Err(err).Str("invoiceId", invoice.ID).Msg("failed to rebill invoice")

			return res, fmt.Errorf("failed to rebill invoice: %w", err)
		}

		if err = s.stamp(ctx, invoice.ID, charges, user, now); err != nil {
			if restoreErr := s.invoiceRepo.Save(ctx, previous); restoreErr != nil {
				log.Error().Err(restoreErr).Str("invoiceId", invoice.ID).Msg("failed to restore invoice after charge stamping failed")
			}

			return res, err
		}

		log.Info().Str("invoiceNo", invoice.InvoiceNo).Int("lines", len(charges)).Str("total", invoice.Total.StringFixed(2)).Msg("invoice rebilled")
	}

	invoice, paid, err := s.reconcile(ctx, invoice)
	if err != nil {
		return res, err
	}

	res.FromModel(invoice, paid)

	return res, nil
}

// ReconcileInvoiceStatus re-reads the invoice and aligns its status with the
// payments recorded for the booking.
func (s *serviceImpl) ReconcileInvoiceStatus(ctx context.Context, invoice model.Invoice) (res model.Invoice, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReconcileInvoiceStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.locks.Lock(bookingModel.LockKey(invoice.BookingID))
	defer unlock()

	current, err := s.invoiceRepo.Get(ctx, shared.FilterByID(invoice.ID, model.FieldID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return invoice, fmt.Errorf("failed to get invoice: %w", err)
	}

	if current.ID == constant.Empty {
		return invoice, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	res, _, err = s.reconcile(ctx, current)

	return res, err
}

// ReconcileAll sweeps every invoice and returns how many changed status.
// A failing invoice does not stop the sweep.
func (s *serviceImpl) ReconcileAll(ctx context.Context) (changed int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReconcileAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	invoices, err := s.invoiceRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return 0, fmt.Errorf("failed to get invoices: %w", err)
	}

	var errs []error

	for _, invoice := range invoices {
		res, err := s.ReconcileInvoiceStatus(ctx, invoice)
		if err != nil {
			errs = append(errs, fmt.Errorf("invoice %s: %w", invoice.InvoiceNo, err))

			continue
		}

		if res.Status != invoice.Status {
			changed++
		}
	}

	return changed, errors.Join(errs...)
}

func (s *serviceImpl) RecordPayment(ctx context.Context, bookingID string, req dto.RecordPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.Amount.IsPositive() {
		return res, failure.Validation("amount", "must be greater than zero") // nolint:wrapcheck
	}

	if !model.IsMethod(req.Method) {
		return res, failure.Validation("method", "is not supported") // nolint:wrapcheck
	}

	if _, ok := s.bookingRepo.GetByID(ctx, bookingID); !ok {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	unlock := s.locks.Lock(bookingModel.LockKey(bookingID))
	defer unlock()

	now := timezone.Now()

	payment := model.Payment{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Amount:      req.Amount,
		Method:      model.Method(req.Method),
		Reference:   strings.TrimSpace(req.Reference),
		Status:      model.PaymentStatusCompleted,
		ProcessedAt: now,
		Metadata:    gModel.NewMetadata(shared.ActorFromContext(ctx), now),
	}

	if err = s.paymentRepo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to record payment")

		return res, fmt.Errorf("failed to record payment: %w", err)
	}

	log.Info().Str("bookingId", bookingID).Str("amount", payment.Amount.String()).Str("method", string(payment.Method)).Msg("payment recorded")

	s.reconcileBooking(ctx, bookingID)

	res.FromModel(payment)

	return res, nil
}

// VoidPayment appends a reversal cancelling a completed payment.
func (s *serviceImpl) VoidPayment(ctx context.Context, paymentID string, req dto.VoidPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VoidPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	original, ok := s.paymentRepo.GetByID(ctx, paymentID)
	if !ok {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	if original.Status == model.PaymentStatusReversal {
		return res, failure.Conflict("a reversal cannot be voided") // nolint:wrapcheck
	}

	unlock := s.locks.Lock(bookingModel.LockKey(original.BookingID))
	defer unlock()

	existing, err := s.paymentRepo.Get(ctx, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldReversesID, Operator: gDto.FilterOperatorEq, Value: paymentID},
	}})
	if err != nil {
		log.Error().Err(err).Msg("failed to check payment reversal")

		return res, fmt.Errorf("failed to check payment reversal: %w", err)
	}

	if existing.ID != constant.Empty {
		return res, failure.Conflict("payment already voided") // nolint:wrapcheck
	}

	now := timezone.Now()

	reversal := model.Payment{
		ID:          uuid.NewString(),
		BookingID:   original.BookingID,
		Amount:      original.Amount.Neg(),
		Method:      original.Method,
		Reference:   original.Reference,
		Status:      model.PaymentStatusReversal,
		ReversesID:  original.ID,
		Reason:      strings.TrimSpace(req.Reason),
		ProcessedAt: now,
		Metadata:    gModel.NewMetadata(shared.ActorFromContext(ctx), now),
	}

	if err = s.paymentRepo.Insert(ctx, reversal); err != nil {
		log.Error().Err(err).Str("paymentId", paymentID).Msg("failed to void payment")

		return res, fmt.Errorf("failed to void payment: %w", err)
	}

	log.Info().Str("bookingId", original.BookingID).Str("paymentId", paymentID).Msg("payment voided")

	s.reconcileBooking(ctx, original.BookingID)

	res.FromModel(reversal)

	return res, nil
}

func (s *serviceImpl) ListPayments(ctx context.Context, bookingID string) (res []dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPayments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, ok := s.bookingRepo.GetByID(ctx, bookingID); !ok {
		return nil, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{}, byBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return dto.FromPayments(payments), nil
}

// PaidAmount is the net of every payment and reversal recorded for the booking.
func (s *serviceImpl) PaidAmount(ctx context.Context, bookingID string) (decimal.Decimal, error) {
	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{}, byBooking(bookingID))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get payments: %w", err)
	}

	return model.PaidTotal(payments), nil
}

func (s *serviceImpl) stayCharge(ctx context.Context, booking bookingModel.Booking) (model.Charge, bool) {
	room, ok := s.roomRepo.GetByID(ctx, booking.RoomID)
	if !ok {
		log.Warn().Str("bookingId", booking.ID).Str("roomId", booking.RoomID).Msg("room not found, skipping stay charge")

		return model.Charge{}, false
	}

	roomType, ok := s.roomTypeRepo.GetByID(ctx, room.RoomTypeID)
	if !ok {
		log.Warn().Str("bookingId", booking.ID).Str("roomTypeId", room.RoomTypeID).Msg("room type not found, skipping stay charge")

		return model.Charge{}, false
	}

	return model.StayCharge(booking, room, roomType), true
}

// insertNumbered allocates the next invoice number of the issue day and
// inserts the invoice while still holding the allocation lock.
func (s *serviceImpl) insertNumbered(ctx context.Context, invoice *model.Invoice) error {
	unlock := s.locks.Lock(lockInvoiceNo)
	defer unlock()

	prefix := s.cfg.Ledger.InvoicePrefix
	if prefix == constant.Empty {
		prefix = defaultInvoicePrefix
	}

	prefix = fmt.Sprintf("%s-%s-", prefix, invoice.IssuedAt.Format(invoiceDateLayout))

	issued, err := s.invoiceRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldInvoiceNo, Operator: gDto.FilterOperatorLike, Value: prefix},
	}})
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return fmt.Errorf("failed to count invoices: %w", err)
	}

	for seq := len(issued) + 1; ; seq++ {
		number := fmt.Sprintf("%s%06d", prefix, seq)

		taken, err := s.invoiceRepo.Exist(ctx, gDto.FilterGroup{Filters: []any{
			gDto.Filter{Field: model.FieldInvoiceNo, Operator: gDto.FilterOperatorEq, Value: number},
		}})
		if err != nil {
			return fmt.Errorf("failed to check invoice number: %w", err)
		}

		if !taken {
			invoice.InvoiceNo = number

			break
		}
	}

	if err = s.invoiceRepo.Insert(ctx, *invoice); err != nil {
		log.Error().Err(err).Str("bookingId", invoice.BookingID).Msg("failed to issue invoice")

		return fmt.Errorf("failed to issue invoice: %w", err)
	}

	return nil
}

// stamp marks the stored charges among charges as billed on invoiceID.
func (s *serviceImpl) stamp(ctx context.Context, invoiceID string, charges []model.Charge, user string, at time.Time) error {
	ids := make([]string, 0, len(charges))

	for _, charge := range charges {
		if strings.HasPrefix(charge.ID, model.StayChargePrefix) {
			continue
		}

		ids = append(ids, charge.ID)
	}

	if len(ids) == 0 {
		return nil
	}

	err := s.chargeRepo.Update(ctx, map[string]any{
		model.FieldInvoiceID:     invoiceID,
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: user,
	}, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorIn, Value: ids},
	}})
	if err != nil {
		log.Error().Err(err).Str("invoiceId", invoiceID).Msg("failed to mark charges as billed")

		return fmt.Errorf("failed to mark charges as billed: %w", err)
	}

	return nil
}

// reconcile flips the invoice to PAID once payments cover the total, and back
// to PENDING when reversals or a rebill leave it short. The caller holds the
// booking lock.
func (s *serviceImpl) reconcile(ctx context.Context, invoice model.Invoice) (model.Invoice, decimal.Decimal, error) {
	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{}, byBooking(invoice.BookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return invoice, decimal.Zero, fmt.Errorf("failed to get payments: %w", err)
	}

	paid := model.PaidTotal(payments)
	now := timezone.Now()
	next := invoice

	switch {
	case paid.GreaterThanOrEqual(invoice.Total) && invoice.Status != model.InvoiceStatusPaid:
		next.Status = model.InvoiceStatusPaid
		next.PaidAt = &now
	case paid.LessThan(invoice.Total) && invoice.Status == model.InvoiceStatusPaid:
		next.Status = model.InvoiceStatusPending
		next.PaidAt = nil
	default:
		return invoice, paid, nil
	}

	next.Touch(shared.ActorFromContext(ctx), now)

	if err = s.invoiceRepo.Save(ctx, next); err != nil {
		log.Error().Err(err).Str("invoiceNo", invoice.InvoiceNo).Msg("failed to update invoice status")

		return invoice, paid, fmt.Errorf("failed to update invoice status: %w", err)
	}

	log.Info().
		Str("invoiceNo", next.InvoiceNo).
		Str("from", string(invoice.Status)).
		Str("to", string(next.Status)).
		Str("paid", paid.String()).
		Msg("invoice status reconciled")

	return next, paid, nil
}

// reconcileBooking reconciles the booking's invoice after a payment write.
// The payment is already durable, so a failure here is logged and left to the
// next read or sweep.
func (s *serviceImpl) reconcileBooking(ctx context.Context, bookingID string) {
	invoice, err := s.invoiceRepo.Get(ctx, byBooking(bookingID))
	if err != nil || invoice.ID == constant.Empty {
		return
	}

	if _, _, err = s.reconcile(ctx, invoice); err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to reconcile invoice after payment")
	}
}

func byBooking(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID},
	}}
}

func unbilled(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID},
		gDto.Filter{Field: model.FieldInvoiceID, Operator: gDto.FilterIsNull},
	}}
}

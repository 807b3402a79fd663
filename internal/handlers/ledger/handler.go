package ledger

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/ledger/model/dto"
	"frontdesk/internal/domains/ledger/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// BookingRouter registers the folio routes on a group already mounted at /bookings.
func (handler *Handler) BookingRouter(router chi.Router) {
	router.Get("/{id}/charges", handler.ListCharges)
	router.Post("/{id}/charges", handler.AddCharge)
	router.Get("/{id}/invoice", handler.GetInvoice)
	router.Post("/{id}/invoice", handler.IssueInvoice)
	router.Post("/{id}/invoice/rebill", handler.RebillInvoice)
	router.Get("/{id}/payments", handler.ListPayments)
	router.Post("/{id}/payments", handler.RecordPayment)
}

func (handler *Handler) PaymentRouter(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/{id}/void", handler.VoidPayment)
	})
}

// ListCharges returns the booking's folio: the derived stay charge first,
// then ad hoc charges in the order they were added.
// @Summary List charges
// @Tags Ledger
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[[]dto.ChargeResponse] "Charges"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [get]
// @Security BearerAuth
func (handler *Handler) ListCharges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListCharges")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ListCharges(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to list charges")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddCharge posts an ad hoc charge to an open booking.
// @Summary Add a charge
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AddChargeRequest true "Add Charge Request"
// @Success 201 {object} response.Data[dto.ChargeResponse] "Charge added"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/charges [post]
// @Security BearerAuth
func (handler *Handler) AddCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCharge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddChargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddCharge(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to add charge")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Charge added by user " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// GetInvoice returns the current invoice with its reconciled status.
// @Summary Get invoice
// @Tags Ledger
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Invoice"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/invoice [get]
// @Security BearerAuth
func (handler *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetInvoice(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get invoice")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// IssueInvoice issues the booking's invoice. Issuing twice returns the
// existing invoice with 200 instead of 201.
// @Summary Issue invoice
// @Tags Ledger
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Existing invoice"
// @Success 201 {object} response.Data[dto.InvoiceResponse] "Invoice issued"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/invoice [post]
// @Security BearerAuth
func (handler *Handler) IssueInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, created, err := handler.service.IssueInvoice(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to issue invoice")

		response.WithError(w, err)

		return
	}

	if !created {
		response.WithJSON(w, http.StatusOK, res)

		return
	}

	scope.AddEvent("Invoice " + res.InvoiceNo + " issued by user " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// RebillInvoice folds unbilled charges into the existing invoice and re-totals it.
// @Summary Rebill invoice
// @Tags Ledger
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Re-totalled invoice"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/invoice/rebill [post]
// @Security BearerAuth
func (handler *Handler) RebillInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RebillInvoice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.RebillInvoice(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to rebill invoice")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice " + res.InvoiceNo + " rebilled by user " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusOK, res)
}

// ListPayments returns every payment and reversal recorded for the booking.
// @Summary List payments
// @Tags Ledger
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[[]dto.PaymentResponse] "Payments"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments [get]
// @Security BearerAuth
func (handler *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPayments")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ListPayments(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to list payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RecordPayment records a payment against the booking.
// @Summary Record payment
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RecordPaymentRequest true "Record Payment Request"
// @Success 201 {object} response.Data[dto.PaymentResponse] "Payment recorded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RecordPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RecordPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment recorded by user " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// VoidPayment reverses a payment by appending a negative entry.
// @Summary Void payment
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body dto.VoidPaymentRequest true "Void Payment Request"
// @Success 201 {object} response.Data[dto.PaymentResponse] "Reversal entry"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id}/void [post]
// @Security BearerAuth
func (handler *Handler) VoidPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VoidPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.VoidPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.VoidPayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("paymentID", id).Msg("failed to void payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment " + id + " voided by user " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

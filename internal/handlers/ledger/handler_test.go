package ledger_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/ledger/model/dto"
	ledgerMocks "frontdesk/internal/domains/ledger/mocks"
	"frontdesk/internal/handlers/ledger"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *ledgerMocks.MockLedger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := ledgerMocks.NewMockLedger(ctrl)
	handler := ledger.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/bookings", handler.BookingRouter)
	handler.PaymentRouter(router)

	return router, service
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_IssueInvoice(t *testing.T) {
	tests := []struct {
		name    string
		created bool
		code    int
	}{
		{name: "first issue", created: true, code: http.StatusCreated},
		{name: "already issued", created: false, code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)

			service.EXPECT().
				IssueInvoice(gomock.Any(), "b1").
				Return(dto.InvoiceResponse{ID: "i1", InvoiceNo: "INV-20261018-000001"}, tt.created, nil)

			recorder := serve(router, http.MethodPost, "/bookings/b1/invoice", "")

			assert.Equal(t, tt.code, recorder.Code)
			assert.Equal(t, "INV-20261018-000001", jsoniter.Get(recorder.Body.Bytes(), "data", "invoice_no").ToString())
		})
	}
}

func TestHandler_RebillInvoice(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "re-totalled in place", code: http.StatusOK},
		{name: "no invoice yet", err: failure.NotFound("invoice not found"), code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)

			service.EXPECT().
				RebillInvoice(gomock.Any(), "b1").
				Return(dto.InvoiceResponse{ID: "i1", InvoiceNo: "INV-20261018-000001"}, tt.err)

			recorder := serve(router, http.MethodPost, "/bookings/b1/invoice/rebill", "")

			assert.Equal(t, tt.code, recorder.Code)

			if tt.err == nil {
				assert.Equal(t, "i1", jsoniter.Get(recorder.Body.Bytes(), "data", "id").ToString())
				assert.Equal(t, "INV-20261018-000001", jsoniter.Get(recorder.Body.Bytes(), "data", "invoice_no").ToString())
			}
		})
	}
}

func TestHandler_AddCharge(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().
		AddCharge(gomock.Any(), "b1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, req dto.AddChargeRequest) (dto.ChargeResponse, error) {
			assert.Equal(t, "MINIBAR", req.Category)
			assert.True(t, decimal.RequireFromString("4.50").Equal(req.UnitPrice))

			return dto.ChargeResponse{ID: "c1", Amount: decimal.RequireFromString("9.00")}, nil
		})

	recorder := serve(router, http.MethodPost, "/bookings/b1/charges",
		`{"description":"Water","category":"MINIBAR","quantity":2,"unit_price":"4.50"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "9", jsoniter.Get(recorder.Body.Bytes(), "data", "amount").ToString())
}

func TestHandler_AddChargeRejectsInvalidBody(t *testing.T) {
	router, _ := newRouter(t)

	recorder := serve(router, http.MethodPost, "/bookings/b1/charges",
		`{"description":"Water","category":"CASINO","quantity":0,"unit_price":"4.50"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.NotEmpty(t, jsoniter.Get(recorder.Body.Bytes(), "error").ToString())
}

func TestHandler_VoidPayment(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().
		VoidPayment(gomock.Any(), "p1", dto.VoidPaymentRequest{Reason: "duplicate"}).
		Return(dto.PaymentResponse{ID: "p2", ReversesID: "p1", Amount: decimal.NewFromInt(-50)}, nil)

	service.EXPECT().
		VoidPayment(gomock.Any(), "p9", gomock.Any()).
		Return(dto.PaymentResponse{}, failure.NotFound("payment not found"))

	recorder := serve(router, http.MethodPost, "/payments/p1/void", `{"reason":"duplicate"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "p1", jsoniter.Get(recorder.Body.Bytes(), "data", "reverses_id").ToString())

	recorder = serve(router, http.MethodPost, "/payments/p9/void", `{"reason":"duplicate"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "payment not found", jsoniter.Get(recorder.Body.Bytes(), "error").ToString())
}

func TestHandler_InternalErrorsAreNotLeaked(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().
		ListPayments(gomock.Any(), "b1").
		Return(nil, assert.AnError)

	recorder := serve(router, http.MethodGet, "/bookings/b1/payments", "")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), jsoniter.Get(recorder.Body.Bytes(), "error").ToString())
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/booking/service"
	ledgerMocks "frontdesk/internal/domains/ledger/mocks"
	ledgerDto "frontdesk/internal/domains/ledger/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/keylock"
	"frontdesk/shared/snapshot"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc    service.Booking
	repo   repository.Booking
	ledger *ledgerMocks.MockLedger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	otl := mocks.NewOtel()
	store := snapshot.NewMemoryStore()
	ctx := context.Background()

	rooms := roomRepo.New(store, otl)
	types := roomRepo.NewRoomType(store, otl)

	require.NoError(t, types.Insert(ctx, roomModel.RoomType{ID: "deluxe", Name: "Deluxe", BaseRate: decimal.NewFromInt(80)}))
	require.NoError(t, rooms.Insert(ctx, roomModel.Room{ID: "room-101", Number: "101", RoomTypeID: "deluxe", Active: true}))
	require.NoError(t, rooms.Insert(ctx, roomModel.Room{ID: "room-102", Number: "102", RoomTypeID: "deluxe", Active: false}))

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := &fixture{
		repo:   repository.New(store, otl),
		ledger: ledgerMocks.NewMockLedger(ctrl),
	}

	f.svc = service.New(f.repo, rooms, types, f.ledger, keylock.New(), cfg, mockCache, otl)

	return f
}

func staffContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		GuestName:    " Ada Lovelace ",
		GuestEmail:   "Ada@Example.com",
		RoomID:       "room-101",
		CheckInDate:  "2024-06-01",
		CheckOutDate: "2024-06-04",
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := staffContext()

	res, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", res.GuestName)
	assert.Equal(t, "ada@example.com", res.GuestEmail)
	assert.NotEmpty(t, res.GuestID)
	assert.Equal(t, string(model.StatusConfirmed), res.Status)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "240.00", res.TotalAmount.StringFixed(2))
	assert.True(t, res.PaidAmount.IsZero())
	assert.Equal(t, "2024-06-01", res.CheckInDate)

	tests := []struct {
		name     string
		mutate   func(req *dto.CreateBookingRequest)
		wantCode int
	}{
		{
			name:     "check-out before check-in",
			mutate:   func(req *dto.CreateBookingRequest) { req.CheckOutDate = "2024-05-30" },
			wantCode: 400,
		},
		{
			name:     "malformed date",
			mutate:   func(req *dto.CreateBookingRequest) { req.CheckInDate = "01/06/2024" },
			wantCode: 400,
		},
		{
			name:     "unknown room",
			mutate:   func(req *dto.CreateBookingRequest) { req.RoomID = "ghost" },
			wantCode: 400,
		},
		{
			name:     "inactive room",
			mutate:   func(req *dto.CreateBookingRequest) { req.RoomID = "room-102" },
			wantCode: 409,
		},
		{
			name: "overlapping stay",
			mutate: func(req *dto.CreateBookingRequest) {
				req.CheckInDate = "2024-06-03"
				req.CheckOutDate = "2024-06-05"
			},
			wantCode: 409,
		},
		{
			name: "back to back stay",
			mutate: func(req *dto.CreateBookingRequest) {
				req.CheckInDate = "2024-06-04"
				req.CheckOutDate = "2024-06-06"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := f.svc.Create(ctx, req)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingService_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := staffContext()

	created, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	f.ledger.EXPECT().PaidAmount(gomock.Any(), created.ID).Return(decimal.NewFromInt(100), nil).AnyTimes()

	checkedIn, err := f.svc.CheckIn(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCheckedIn), checkedIn.Status)
	assert.Equal(t, "100.00", checkedIn.PaidAmount.StringFixed(2))

	_, err = f.svc.CheckIn(ctx, created.ID)
	assert.True(t, failure.IsConflict(err))

	f.ledger.EXPECT().
		IssueInvoice(gomock.Any(), created.ID).
		Return(ledgerDto.InvoiceResponse{ID: "inv-1", InvoiceNo: "INV-20240604-000001"}, true, nil)

	checkedOut, err := f.svc.CheckOut(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCheckedOut), checkedOut.Booking.Status)
	assert.Equal(t, "INV-20240604-000001", checkedOut.Invoice.InvoiceNo)

	_, err = f.svc.CheckOut(ctx, created.ID)
	assert.True(t, failure.IsConflict(err))

	_, err = f.svc.Cancel(ctx, created.ID)
	assert.True(t, failure.IsConflict(err))

	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCheckedOut), got.Status)
	assert.Equal(t, "test-user-id", got.ModifiedBy)
}

func TestBookingService_CheckOutRequiresCheckIn(t *testing.T) {
	f := newFixture(t)
	ctx := staffContext()

	created, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = f.svc.CheckOut(ctx, created.ID)
	assert.True(t, failure.IsConflict(err))

	_, err = f.svc.CheckOut(ctx, "ghost")
	assert.True(t, failure.IsNotFound(err))
}

func TestBookingService_CheckOutKeepsStatusWhenInvoicingFails(t *testing.T) {
	f := newFixture(t)
	ctx := staffContext()

	created, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	f.ledger.EXPECT().PaidAmount(gomock.Any(), created.ID).Return(decimal.Zero, nil).AnyTimes()

	_, err = f.svc.CheckIn(ctx, created.ID)
	require.NoError(t, err)

	f.ledger.EXPECT().
		IssueInvoice(gomock.Any(), created.ID).
		Return(ledgerDto.InvoiceResponse{}, false, errors.New("snapshot unavailable"))

	_, err = f.svc.CheckOut(ctx, created.ID)
	require.Error(t, err)

	booking, ok := f.repo.GetByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, model.StatusCheckedIn, booking.Status)
}

func TestBookingService_Cancel(t *testing.T) {
	f := newFixture(t)
	ctx := staffContext()

	created, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	f.ledger.EXPECT().PaidAmount(gomock.Any(), created.ID).Return(decimal.Zero, nil).AnyTimes()

	cancelled, err := f.svc.Cancel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCancelled), cancelled.Status)

	_, err = f.svc.CheckIn(ctx, created.ID)
	assert.True(t, failure.IsConflict(err))

	again, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, again.ID)
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)
	ctx := staffContext()

	first, err := f.svc.Create(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.CheckInDate = "2024-07-01"
	req.CheckOutDate = "2024-07-02"

	second, err := f.svc.Create(ctx, req)
	require.NoError(t, err)

	f.ledger.EXPECT().PaidAmount(gomock.Any(), first.ID).Return(decimal.NewFromInt(240), nil)
	f.ledger.EXPECT().PaidAmount(gomock.Any(), second.ID).Return(decimal.Zero, nil)

	res, err := f.svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, "240.00", res.Bookings[0].PaidAmount.StringFixed(2))

	_, err = f.svc.Get(ctx, "ghost")
	assert.True(t, failure.IsNotFound(err))
}

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	ledgerService "frontdesk/internal/domains/ledger/service"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/keylock"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.CheckOutResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	roomTypeRepo roomRepo.RoomType
	ledger       ledgerService.Ledger
	locks        *keylock.KeyedMutex
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	roomTypeRepo roomRepo.RoomType,
	ledger ledgerService.Ledger,
	locks *keylock.KeyedMutex,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		ledger:       ledger,
		locks:        locks,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, err := timezone.ParseDate(req.CheckInDate)
	if err != nil {
		return res, failure.Validation("check_in_date", "must be a date (YYYY-MM-DD)") // nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(req.CheckOutDate)
	if err != nil {
		return res, failure.Validation("check_out_date", "must be a date (YYYY-MM-DD)") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.Validation("check_out_date", "must be after check_in_date") // nolint:wrapcheck
	}

	room, ok := s.roomRepo.GetByID(ctx, req.RoomID)
	if !ok {
		return res, failure.Validation("room_id", "does not exist") // nolint:wrapcheck
	}

	if !room.Active {
		return res, failure.Conflict("room is not available for booking") // nolint:wrapcheck
	}

	roomType, ok := s.roomTypeRepo.GetByID(ctx, room.RoomTypeID)
	if !ok {
		log.Error().Str("roomId", room.ID).Str("roomTypeId", room.RoomTypeID).Msg("room references a missing room type")

		return res, failure.Conflict("room has no rate configured") // nolint:wrapcheck
	}

	unlock := s.locks.Lock("room:" + room.ID)
	defer unlock()

	active, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldRoomID, Operator: gDto.FilterOperatorEq, Value: room.ID},
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorIn, Value: []model.Status{model.StatusConfirmed, model.StatusCheckedIn}},
	}})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, fmt.Errorf("failed to get room bookings: %w", err)
	}

	for _, other := range active {
		if other.CheckInDate.Before(checkOut) && other.CheckOutDate.After(checkIn) {
			return res, failure.Conflict("room is already booked for the selected dates") // nolint:wrapcheck
		}
	}

	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.ToLower(strings.TrimSpace(req.GuestEmail))

	booking := req.ToModel(shared.ActorFromContext(ctx), checkIn, checkOut)
	booking.TotalAmount = roomType.BaseRate.Mul(decimal.NewFromInt(int64(booking.Nights())))

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)
	res.PaidAmount = decimal.Zero

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to count bookings: %w", err)
		}

		models, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get bookings")

			return res, fmt.Errorf("failed to get bookings: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		cached := res
		cached.Bookings = slices.Clone(res.Bookings)

		s.saveCache(ctx, cacheKey, cached)
	}

	for i := range res.Bookings {
		if res.Bookings[i].PaidAmount, err = s.ledger.PaidAmount(ctx, res.Bookings[i].ID); err != nil {
			log.Error().Err(err).Msg("failed to get paid amount")

			return res, fmt.Errorf("failed to get paid amount: %w", err)
		}
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

// Get serves the booking from cache when possible; the paid amount is always
// derived from the ledger.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		booking, ok := s.repo.GetByID(ctx, id)
		if !ok {
			return res, failure.NotFound("booking not found") // nolint:wrapcheck
		}

		res.FromModel(booking)

		s.saveCache(ctx, cacheKey, res)
	}

	res.PaidAmount, err = s.ledger.PaidAmount(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get paid amount")

		return res, fmt.Errorf("failed to get paid amount: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, id, model.StatusCheckedIn)
	if err != nil {
		return res, err
	}

	return s.respond(ctx, booking)
}

// CheckOut issues the invoice first, so a booking is never CHECKED_OUT
// without one. Issuing is idempotent and a retry after a failed status write
// returns the same invoice.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, ok := s.repo.GetByID(ctx, id)
	if !ok {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, model.StatusCheckedOut) {
		return res, transitionConflict(booking.Status, model.StatusCheckedOut)
	}

	res.Invoice, _, err = s.ledger.IssueInvoice(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to issue invoice on check-out")

		return res, fmt.Errorf("failed to issue invoice on check-out: %w", err)
	}

	booking, err = s.transition(ctx, id, model.StatusCheckedOut)
	if err != nil {
		return res, err
	}

	res.Booking, err = s.respond(ctx, booking)

	return res, err
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, id, model.StatusCancelled)
	if err != nil {
		return res, err
	}

	return s.respond(ctx, booking)
}

// transition moves the booking to the given status under the booking lock
// shared with the ledger.
func (s *serviceImpl) transition(ctx context.Context, id string, to model.Status) (model.Booking, error) {
	unlock := s.locks.Lock(model.LockKey(id))
	defer unlock()

	booking, ok := s.repo.GetByID(ctx, id)
	if !ok {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, to) {
		return booking, transitionConflict(booking.Status, to)
	}

	user := shared.ActorFromContext(ctx)
	now := timezone.Now()

	err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Str("status", string(to)).Msg("failed to update booking status")

		return booking, fmt.Errorf("failed to update booking status: %w", err)
	}

	log.Info().Str("bookingId", id).Str("from", string(booking.Status)).Str("to", string(to)).Msg("booking status changed")

	booking.Status = to
	booking.Touch(user, now)

	s.invalidate(ctx, id)

	return booking, nil
}

func (s *serviceImpl) respond(ctx context.Context, booking model.Booking) (res dto.BookingResponse, err error) {
	res.FromModel(booking)

	res.PaidAmount, err = s.ledger.PaidAmount(ctx, booking.ID)
	if err != nil {
		return res, fmt.Errorf("failed to get paid amount: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save booking cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func transitionConflict(from, to model.Status) error {
	return failure.Conflict(fmt.Sprintf("booking is %s and cannot become %s", from, to)) // nolint:wrapcheck
}

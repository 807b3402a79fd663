package dto

import (
	"time"

	"frontdesk/internal/domains/booking/model"
	ledgerDto "frontdesk/internal/domains/ledger/model/dto"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	GuestID      string `json:"guest_id"       validate:"omitempty,max=64"`
	GuestName    string `json:"guest_name"     validate:"required,max=100"`
	GuestEmail   string `json:"guest_email"    validate:"omitempty,email,max=100"`
	RoomID       string `json:"room_id"        validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required,date"`
	CheckOutDate string `json:"check_out_date" validate:"required,date"`
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time) model.Booking {
	guestID := c.GuestID
	if guestID == "" {
		guestID = uuid.NewString()
	}

	return model.Booking{
		ID:           uuid.NewString(),
		GuestID:      guestID,
		GuestName:    c.GuestName,
		GuestEmail:   c.GuestEmail,
		RoomID:       c.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       model.StatusConfirmed,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}
}

type BookingResponse struct {
	ID           string          `json:"id"`
	GuestID      string          `json:"guest_id"`
	GuestName    string          `json:"guest_name"`
	GuestEmail   string          `json:"guest_email,omitempty"`
	RoomID       string          `json:"room_id"`
	CheckInDate  string          `json:"check_in_date"`
	CheckOutDate string          `json:"check_out_date"`
	Nights       int             `json:"nights"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount" swaggertype:"string"`
	PaidAmount   decimal.Decimal `json:"paid_amount"  swaggertype:"string"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.RoomID = model.RoomID
	r.CheckInDate = timezone.Format(model.CheckInDate, time.DateOnly)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, time.DateOnly)
	r.Nights = model.Nights()
	r.Status = string(model.Status)
	r.TotalAmount = model.TotalAmount
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CheckOutResponse struct {
	Booking BookingResponse           `json:"booking"`
	Invoice ledgerDto.InvoiceResponse `json:"invoice"`
}

package model

import (
	"math"
	"time"

	"frontdesk/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldGuestID      = "guest_id"
	FieldGuestName    = "guest_name"
	FieldGuestEmail   = "guest_email"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
	FieldTotalAmount  = "total_amount"
)

type Status string

const (
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

type Booking struct {
	ID           string          `db:"id"             json:"id"`
	GuestID      string          `db:"guest_id"       json:"guest_id"`
	GuestName    string          `db:"guest_name"     json:"guest_name"`
	GuestEmail   string          `db:"guest_email"    json:"guest_email"`
	RoomID       string          `db:"room_id"        json:"room_id"`
	CheckInDate  time.Time       `db:"check_in_date"  json:"check_in_date"`
	CheckOutDate time.Time       `db:"check_out_date" json:"check_out_date"`
	Status       Status          `db:"status"         json:"status"`
	TotalAmount  decimal.Decimal `db:"total_amount"   json:"total_amount"`
	model.Metadata
}

// Nights is the number of billable nights, rounded up to whole days and never below one.
func (b Booking) Nights() int {
	hours := b.CheckOutDate.Sub(b.CheckInDate).Hours()

	nights := int(math.Ceil(hours / 24))
	if nights < 1 {
		return 1
	}

	return nights
}

// LockKey names the per-booking lock shared by the booking lifecycle and the ledger.
func LockKey(bookingID string) string {
	return "booking:" + bookingID
}

package model

import (
	"fmt"
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/model"

	"github.com/shopspring/decimal"
)

const (
	ChargeTableName  = "charges"
	ChargeEntityName = "charge"

	InvoiceTableName  = "invoices"
	InvoiceEntityName = "invoice"

	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldInvoiceID   = "invoice_id"
	FieldInvoiceNo   = "invoice_no"
	FieldStatus      = "status"
	FieldReversesID  = "reverses_id"
	FieldProcessedAt = "processed_at"
)

// StayChargePrefix prefixes the id of the derived room charge, which is
// recomputed on demand and never stored.
const StayChargePrefix = "stay-"

type Category string

const (
	CategoryRoom    Category = "ROOM"
	CategoryMinibar Category = "MINIBAR"
	CategoryService Category = "SERVICE"
	CategoryDamage  Category = "DAMAGE"
	CategoryOther   Category = "OTHER"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
)

type Method string

const (
	MethodCash         Method = "CASH"
	MethodCard         Method = "CARD"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodEWallet      Method = "E_WALLET"
	MethodOther        Method = "OTHER"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusReversal  PaymentStatus = "REVERSAL"
)

// PaymentState is the client facing view of how far an invoice is settled.
type PaymentState string

const (
	PaymentStateUnpaid        PaymentState = "UNPAID"
	PaymentStatePartiallyPaid PaymentState = "PARTIALLY_PAID"
	PaymentStatePaid          PaymentState = "PAID"
	PaymentStateOverpaid      PaymentState = "OVERPAID"
)

// Charge is a billable line. InvoiceID stays empty until the charge is folded
// into an invoice and is never changed afterwards.
type Charge struct {
	ID          string          `db:"id"          json:"id"`
	BookingID   string          `db:"booking_id"  json:"booking_id"`
	Description string          `db:"description" json:"description"`
	Category    Category        `db:"category"    json:"category"`
	Quantity    int             `db:"quantity"    json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"  json:"unit_price"`
	Amount      decimal.Decimal `db:"amount"      json:"amount"`
	InvoiceID   string          `db:"invoice_id"  json:"invoice_id"`
	model.Metadata
}

// InvoiceLine is the copy of a charge taken when it was billed.
type InvoiceLine struct {
	ChargeID    string          `json:"charge_id"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

type Invoice struct {
	ID        string          `db:"id"         json:"id"`
	BookingID string          `db:"booking_id" json:"booking_id"`
	InvoiceNo string          `db:"invoice_no" json:"invoice_no"`
	Lines     []InvoiceLine   `db:"lines"      json:"lines"`
	Subtotal  decimal.Decimal `db:"subtotal"   json:"subtotal"`
	TaxRate   decimal.Decimal `db:"tax_rate"   json:"tax_rate"`
	Tax       decimal.Decimal `db:"tax"        json:"tax"`
	Total     decimal.Decimal `db:"total"      json:"total"`
	IssuedAt  time.Time       `db:"issued_at"  json:"issued_at"`
	PaidAt    *time.Time      `db:"paid_at"    json:"paid_at"`
	Status    InvoiceStatus   `db:"status"     json:"status"`
	model.Metadata
}

// Payment is append-only. A reversal is its own row with a negative amount
// pointing at the payment it cancels.
type Payment struct {
	ID          string          `db:"id"           json:"id"`
	BookingID   string          `db:"booking_id"   json:"booking_id"`
	Amount      decimal.Decimal `db:"amount"       json:"amount"`
	Method      Method          `db:"method"       json:"method"`
	Reference   string          `db:"reference"    json:"reference"`
	Status      PaymentStatus   `db:"status"       json:"status"`
	ReversesID  string          `db:"reverses_id"  json:"reverses_id"`
	Reason      string          `db:"reason"       json:"reason"`
	ProcessedAt time.Time       `db:"processed_at" json:"processed_at"`
	model.Metadata
}

func IsCategory(value string) bool {
	switch Category(value) {
	case CategoryRoom, CategoryMinibar, CategoryService, CategoryDamage, CategoryOther:
		return true
	default:
		return false
	}
}

func IsMethod(value string) bool {
	switch Method(value) {
	case MethodCash, MethodCard, MethodBankTransfer, MethodEWallet, MethodOther:
		return true
	default:
		return false
	}
}

// StayCharge derives the room charge of a booking: whole nights at the room
// type's base rate.
func StayCharge(booking bookingModel.Booking, room roomModel.Room, roomType roomModel.RoomType) Charge {
	nights := booking.Nights()

	unit := "nights"
	if nights == 1 {
		unit = "night"
	}

	return Charge{
		ID:          StayChargePrefix + booking.ID,
		BookingID:   booking.ID,
		Description: fmt.Sprintf("Room %s (%s), %d %s", room.Number, roomType.Name, nights, unit),
		Category:    CategoryRoom,
		Quantity:    nights,
		UnitPrice:   roomType.BaseRate,
		Amount:      roomType.BaseRate.Mul(decimal.NewFromInt(int64(nights))),
	}
}

// Line snapshots the charge for an invoice.
func (c Charge) Line() InvoiceLine {
	return InvoiceLine{
		ChargeID:    c.ID,
		Description: c.Description,
		Category:    c.Category,
		Quantity:    c.Quantity,
		UnitPrice:   c.UnitPrice,
		Amount:      c.Amount,
	}
}

// Retotal recomputes subtotal, tax and total from the lines at the invoice's tax rate.
func (i *Invoice) Retotal() {
	subtotal := decimal.Zero
	for _, line := range i.Lines {
		subtotal = subtotal.Add(line.Amount)
	}

	i.Subtotal = subtotal
	i.Tax = subtotal.Mul(i.TaxRate).Round(2)
	i.Total = subtotal.Add(i.Tax)
}

// PaymentState classifies paid against the invoice total.
func (i Invoice) PaymentState(paid decimal.Decimal) PaymentState {
	switch {
	case paid.Equal(i.Total):
		return PaymentStatePaid
	case !paid.IsPositive():
		return PaymentStateUnpaid
	case paid.LessThan(i.Total):
		return PaymentStatePartiallyPaid
	default:
		return PaymentStateOverpaid
	}
}

// BalanceDue is what remains to be paid; it never goes below zero.
func (i Invoice) BalanceDue(paid decimal.Decimal) decimal.Decimal {
	balance := i.Total.Sub(paid)
	if balance.IsNegative() {
		return decimal.Zero
	}

	return balance
}

// PaidTotal sums every payment including reversals.
func PaidTotal(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, payment := range payments {
		total = total.Add(payment.Amount)
	}

	return total
}

package dto

import (
	"frontdesk/internal/domains/ledger/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"

	"github.com/shopspring/decimal"
)

type AddChargeRequest struct {
	Description string           `json:"description" validate:"required,max=200"`
	Category    string           `json:"category"    validate:"required,oneof=ROOM MINIBAR SERVICE DAMAGE OTHER"`
	Quantity    int              `json:"quantity"    validate:"required,gt=0"`
	UnitPrice   decimal.Decimal  `json:"unit_price"  validate:"gt=0"                                              swaggertype:"string"`
	Amount      *decimal.Decimal `json:"amount"      validate:"omitempty"                                         swaggertype:"string"`
}

type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"    validate:"gt=0"                                                swaggertype:"string"`
	Method    string          `json:"method"    validate:"required,oneof=CASH CARD BANK_TRANSFER E_WALLET OTHER"`
	Reference string          `json:"reference" validate:"omitempty,max=100"`
}

type VoidPaymentRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type ChargeResponse struct {
	ID          string          `json:"id"`
	BookingID   string          `json:"booking_id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Amount      decimal.Decimal `json:"amount"     swaggertype:"string"`
	InvoiceID   string          `json:"invoice_id,omitempty"`
	Derived     bool            `json:"derived"`
}

func (r *ChargeResponse) FromModel(charge model.Charge) {
	r.ID = charge.ID
	r.BookingID = charge.BookingID
	r.Description = charge.Description
	r.Category = string(charge.Category)
	r.Quantity = charge.Quantity
	r.UnitPrice = charge.UnitPrice
	r.Amount = charge.Amount
	r.InvoiceID = charge.InvoiceID
	r.Derived = charge.CreatedAt.IsZero()
}

func FromCharges(charges []model.Charge) []ChargeResponse {
	res := make([]ChargeResponse, len(charges))
	for i, charge := range charges {
		res[i].FromModel(charge)
	}

	return res
}

type InvoiceLineResponse struct {
	ChargeID    string          `json:"charge_id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Amount      decimal.Decimal `json:"amount"     swaggertype:"string"`
}

type InvoiceResponse struct {
	ID           string                `json:"id"`
	BookingID    string                `json:"booking_id"`
	InvoiceNo    string                `json:"invoice_no"`
	Lines        []InvoiceLineResponse `json:"lines"`
	Subtotal     decimal.Decimal       `json:"subtotal"      swaggertype:"string"`
	TaxRate      decimal.Decimal       `json:"tax_rate"      swaggertype:"string"`
	Tax          decimal.Decimal       `json:"tax"           swaggertype:"string"`
	Total        decimal.Decimal       `json:"total"         swaggertype:"string"`
	PaidAmount   decimal.Decimal       `json:"paid_amount"   swaggertype:"string"`
	BalanceDue   decimal.Decimal       `json:"balance_due"   swaggertype:"string"`
	PaymentState string                `json:"payment_state"`
	Status       string                `json:"status"`
	IssuedAt     string                `json:"issued_at"`
	PaidAt       string                `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(invoice model.Invoice, paid decimal.Decimal) {
	r.ID = invoice.ID
	r.BookingID = invoice.BookingID
	r.InvoiceNo = invoice.InvoiceNo
	r.Subtotal = invoice.Subtotal
	r.TaxRate = invoice.TaxRate
	r.Tax = invoice.Tax
	r.Total = invoice.Total
	r.PaidAmount = paid
	r.BalanceDue = invoice.BalanceDue(paid)
	r.PaymentState = string(invoice.PaymentState(paid))
	r.Status = string(invoice.Status)
	r.IssuedAt = timezone.Format(invoice.IssuedAt, constant.DateFormat)

	if invoice.PaidAt != nil {
		r.PaidAt = timezone.Format(*invoice.PaidAt, constant.DateFormat)
	}

	r.Lines = make([]InvoiceLineResponse, len(invoice.Lines))
	for i, line := range invoice.Lines {
		r.Lines[i] = InvoiceLineResponse{
			ChargeID:    line.ChargeID,
			Description: line.Description,
			Category:    string(line.Category),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      line.Amount,
		}
	}

	r.Metadata.FromModel(invoice.Metadata)
}

type PaymentResponse struct {
	ID          string          `json:"id"`
	BookingID   string          `json:"booking_id"`
	Amount      decimal.Decimal `json:"amount"      swaggertype:"string"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference,omitempty"`
	Status      string          `json:"status"`
	ReversesID  string          `json:"reverses_id,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	ProcessedAt string          `json:"processed_at"`
}

func (r *PaymentResponse) FromModel(payment model.Payment) {
	r.ID = payment.ID
	r.BookingID = payment.BookingID
	r.Amount = payment.Amount
	r.Method = string(payment.Method)
	r.Reference = payment.Reference
	r.Status = string(payment.Status)
	r.ReversesID = payment.ReversesID
	r.Reason = payment.Reason
	r.ProcessedAt = timezone.Format(payment.ProcessedAt, constant.DateFormat)
}

func FromPayments(payments []model.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		res[i].FromModel(payment)
	}

	return res
}

package model

import (
	"strings"
	"time"

	"frontdesk/shared/model"
)

const (
	TableName       = "access_requests"
	EntityName      = "access request"
	ReplyTableName  = "access_request_replies"
	ReplyEntityName = "access request reply"

	FieldID              = "id"
	FieldEmail           = "email"
	FieldStatus          = "status"
	FieldAdminNotes      = "admin_notes"
	FieldRole            = "role"
	FieldAccessRequestID = "access_request_id"
	FieldReceivedAt      = "received_at"
)

type Status string

const (
	StatusPending      Status = "PENDING"
	StatusNeedsInfo    Status = "NEEDS_INFO"
	StatusInfoReceived Status = "INFO_RECEIVED"
	StatusApproved     Status = "APPROVED"
	StatusRejected     Status = "REJECTED"
)

// Every non-terminal state may move to any non-initial state, including
// itself. Approved and rejected requests leave the active set.
var transitions = map[Status][]Status{
	StatusPending:      {StatusNeedsInfo, StatusInfoReceived, StatusApproved, StatusRejected},
	StatusNeedsInfo:    {StatusNeedsInfo, StatusInfoReceived, StatusApproved, StatusRejected},
	StatusInfoReceived: {StatusNeedsInfo, StatusInfoReceived, StatusApproved, StatusRejected},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type AccessRequest struct {
	ID         string `db:"id"          json:"id"`
	FullName   string `db:"full_name"   json:"full_name"`
	Email      string `db:"email"       json:"email"`
	Company    string `db:"company"     json:"company"`
	Role       string `db:"role"        json:"role"`
	Message    string `db:"message"     json:"message"`
	AdminNotes string `db:"admin_notes" json:"admin_notes"`
	Status     Status `db:"status"      json:"status"`
	model.Metadata
}

type Reply struct {
	ID              string    `db:"id"                json:"id"`
	AccessRequestID string    `db:"access_request_id" json:"access_request_id"`
	FromEmail       string    `db:"from_email"        json:"from_email"`
	Subject         string    `db:"subject"           json:"subject"`
	BodyText        string    `db:"body_text"         json:"body_text"`
	ReceivedAt      time.Time `db:"received_at"       json:"received_at"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func LockKey(id string) string {
	return "access-request:" + id
}

func EmailLockKey(email string) string {
	return "email:" + NormalizeEmail(email)
}

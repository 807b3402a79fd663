package dto

import (
	"strings"

	"frontdesk/internal/domains/accessrequest/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type SubmitRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Company  string `json:"company"   validate:"omitempty,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=ADMIN MANAGER RECEPTIONIST ACCOUNTANT STAFF"`
	Message  string `json:"message"   validate:"omitempty,max=2000"`
}

// ToModel builds a pending request. The requested role defaults to staff.
func (r *SubmitRequest) ToModel(user string) model.AccessRequest {
	role := r.Role
	if role == "" {
		role = constant.RoleStaff
	}

	return model.AccessRequest{
		ID:       uuid.NewString(),
		FullName: strings.TrimSpace(r.FullName),
		Email:    model.NormalizeEmail(r.Email),
		Company:  strings.TrimSpace(r.Company),
		Role:     role,
		Message:  strings.TrimSpace(r.Message),
		Status:   model.StatusPending,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type RequestInfoRequest struct {
	Notes string `json:"notes" validate:"required,max=2000"`
}

type RejectRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

type ApproveRequest struct {
	Role string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER RECEPTIONIST ACCOUNTANT STAFF"`
}

type RecordReplyRequest struct {
	FromEmail string `json:"from_email" validate:"required,email"`
	Subject   string `json:"subject"    validate:"omitempty,max=255"`
	BodyText  string `json:"body_text"  validate:"required"`
}

func (r *RecordReplyRequest) ToModel(requestID string) model.Reply {
	return model.Reply{
		ID:              uuid.NewString(),
		AccessRequestID: requestID,
		FromEmail:       model.NormalizeEmail(r.FromEmail),
		Subject:         strings.TrimSpace(r.Subject),
		BodyText:        r.BodyText,
		ReceivedAt:      timezone.Now(),
	}
}

type AccessRequestResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Company    string `json:"company,omitempty"`
	Role       string `json:"role"`
	Message    string `json:"message,omitempty"`
	AdminNotes string `json:"admin_notes,omitempty"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *AccessRequestResponse) FromModel(model model.AccessRequest) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Company = model.Company
	r.Role = model.Role
	r.Message = model.Message
	r.AdminNotes = model.AdminNotes
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetAccessRequestsResponse struct {
	AccessRequests []AccessRequestResponse `json:"access_requests"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetAccessRequestsResponse) FromModels(models []model.AccessRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.AccessRequests = make([]AccessRequestResponse, len(models))
	for i, mod := range models {
		r.AccessRequests[i].FromModel(mod)
	}
}

type ReplyResponse struct {
	ID              string `json:"id"`
	AccessRequestID string `json:"access_request_id"`
	FromEmail       string `json:"from_email"`
	Subject         string `json:"subject"`
	BodyText        string `json:"body_text"`
	ReceivedAt      string `json:"received_at"`
}

func (r *ReplyResponse) FromModel(model model.Reply) {
	r.ID = model.ID
	r.AccessRequestID = model.AccessRequestID
	r.FromEmail = model.FromEmail
	r.Subject = model.Subject
	r.BodyText = model.BodyText
	r.ReceivedAt = timezone.Format(model.ReceivedAt, constant.DateFormat)
}

func FromReplies(models []model.Reply) []ReplyResponse {
	res := make([]ReplyResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

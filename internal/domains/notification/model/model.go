package model

type Template string

const (
	TemplateAccessRequestReceived  Template = "access_request_received"
	TemplateAccessRequestAlert     Template = "access_request_alert"
	TemplateAccessRequestNeedsInfo Template = "access_request_needs_info"
	TemplateAccessRequestReply     Template = "access_request_reply"
	TemplateAccessRequestApproved  Template = "access_request_approved"
	TemplateAccessRequestRejected  Template = "access_request_rejected"
)

type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelSMS   Channel = "SMS"
)

// Template data keys.
const (
	DataAppName           = "AppName"
	DataFullName          = "FullName"
	DataEmail             = "Email"
	DataCompany           = "Company"
	DataRole              = "Role"
	DataMessage           = "Message"
	DataNotes             = "Notes"
	DataSubject           = "Subject"
	DataBody              = "Body"
	DataRequestID         = "RequestID"
	DataLoginURL          = "LoginURL"
	DataTemporaryPassword = "TemporaryPassword"
)

// Message is one notification to a single recipient. It is also the payload
// published on the notification topic.
type Message struct {
	Template  Template          `json:"template"`
	Channel   Channel           `json:"channel"`
	Recipient string            `json:"recipient"`
	Data      map[string]string `json:"data"`
}

type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Sensitive reports whether the message carries a credential that must not
// leave the process.
func (m Message) Sensitive() bool {
	_, ok := m.Data[DataTemporaryPassword]

	return ok
}

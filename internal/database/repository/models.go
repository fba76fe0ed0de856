package repository

import "time"

// Compartment is a topology canvas container row. Geometry is stored in
// canvas units.
type Compartment struct {
	ID        string
	Name      string
	X         int
	Y         int
	Width     int
	Height    int
	Metadata  string
	UpdatedAt time.Time
}

// Approval states.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Approval is a pending approval request row.
type Approval struct {
	ID        string
	Title     string
	Requester string
	Resource  string
	State     string
	CreatedAt time.Time
}

// AuditEvent is one audit log row.
type AuditEvent struct {
	ID         string
	Actor      string
	Action     string
	Resource   string
	Detail     string
	OccurredAt time.Time
}

// Notification is one notification row.
type Notification struct {
	ID        string
	Subject   string
	Body      string
	Read      bool
	CreatedAt time.Time
}

// Group is an access group row.
type Group struct {
	ID          string
	Name        string
	Description string
}

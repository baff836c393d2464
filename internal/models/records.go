package models

import "time"

type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "Open"
	RequestStatusInProgress RequestStatus = "In Progress"
	RequestStatusClosed     RequestStatus = "Closed"
)

// SkillRequest is an append-only log entry. Name is a snapshot of the
// requester's name at creation time. Status defaults to Open; no handler
// transitions it (known gap in the product, kept read-only here).
type SkillRequest struct {
	ID        string
	Email     string
	Name      string
	Skill     string
	Status    RequestStatus
	CreatedAt time.Time
}

// Session records a scheduled meeting between two users. The link is
// generated once at creation and never changes.
type Session struct {
	ID             string
	SchedulerEmail string
	PeerEmail      string
	Skill          string
	DateTime       string
	Link           string
	CreatedAt      time.Time
}

// Notification is delivered to a user by email. Read only ever flips from
// false to true; notifications are never deleted except when the account is.
type Notification struct {
	ID        string
	Email     string
	Message   string
	Read      bool
	CreatedAt time.Time
}

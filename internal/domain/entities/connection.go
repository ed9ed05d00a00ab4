package entities

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionRequestStatus represents a request's state; accepted and rejected
// are terminal and a resolved pair is never reopened.
type ConnectionRequestStatus string

const (
	ConnectionRequestPending  ConnectionRequestStatus = "pending"
	ConnectionRequestAccepted ConnectionRequestStatus = "accepted"
	ConnectionRequestRejected ConnectionRequestStatus = "rejected"
)

// ConnectionRequest represents a directed request from one user to another.
// At most one request may ever exist per ordered (from, to) pair.
type ConnectionRequest struct {
	ID         uuid.UUID               `json:"id" gorm:"type:uuid;primary_key"`
	FromUserID uuid.UUID               `json:"fromUserId"`
	ToUserID   uuid.UUID               `json:"toUserId"`
	Status     ConnectionRequestStatus `json:"status"`
	CreatedAt  time.Time               `json:"createdAt"`
	ResolvedAt *time.Time              `json:"resolvedAt,omitempty"`
}

// Connection represents a mutual relationship gating messaging. Symmetric and
// immutable once created; there is no disconnect operation.
type Connection struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	UserAID   uuid.UUID `json:"userAId"`
	UserBID   uuid.UUID `json:"userBId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Involves reports whether the connection links the given user.
func (c *Connection) Involves(userID uuid.UUID) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// Peer returns the other end of the connection for the given user.
func (c *Connection) Peer(userID uuid.UUID) uuid.UUID {
	if c.UserAID == userID {
		return c.UserBID
	}
	return c.UserAID
}

// SendConnectionRequestInput represents input for sending a request
type SendConnectionRequestInput struct {
	ToUserID string `json:"toUserId" binding:"required"`
}

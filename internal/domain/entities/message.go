package entities

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a private message between two connected users
type Message struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	FromUserID uuid.UUID `json:"fromUserId"`
	ToUserID   uuid.UUID `json:"toUserId"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SendMessageInput represents input for sending a message
type SendMessageInput struct {
	ToUserID string `json:"toUserId" binding:"required"`
	Body     string `json:"body" binding:"required,min=1,max=2000"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type ConnectionRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FromUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_request_pair,unique"`
	ToUserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_request_pair,unique;index"`
	Status     string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// Connection rows are stored with the pair in canonical order (lowest UUID
// first) so the unique index covers both directions.
type Connection struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserAID   uuid.UUID `gorm:"type:uuid;column:user_a_id;not null;index:idx_connection_pair,unique"`
	UserBID   uuid.UUID `gorm:"type:uuid;column:user_b_id;not null;index:idx_connection_pair,unique;index"`
	CreatedAt time.Time
}

type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FromUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	ToUserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Body       string    `gorm:"type:text;not null"`
	Read       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

type Activity struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type             string     `gorm:"type:varchar(50);not null;index"`
	ActorID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	SecondaryActorID *uuid.UUID `gorm:"type:uuid;index"`
	CropID           *uuid.UUID `gorm:"type:uuid"`
	Description      string     `gorm:"type:varchar(255)"`
	Read             bool       `gorm:"not null;default:false"`
	CreatedAt        time.Time
}

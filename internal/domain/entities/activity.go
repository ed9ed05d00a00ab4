package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType represents the kind of domain event an activity record logs
type ActivityType string

const (
	ActivityCropListed         ActivityType = "CROP_LISTED"
	ActivityCropApproved       ActivityType = "CROP_APPROVED"
	ActivityCropRejected       ActivityType = "CROP_REJECTED"
	ActivityJobAccepted        ActivityType = "JOB_ACCEPTED"
	ActivityPickupConfirmed    ActivityType = "PICKUP_CONFIRMED"
	ActivityCropDelivered      ActivityType = "CROP_DELIVERED"
	ActivitySettlementDone     ActivityType = "SETTLEMENT_COMPLETED"
	ActivityCropSold           ActivityType = "CROP_SOLD"
	ActivityConnectionAccepted ActivityType = "CONNECTION_ACCEPTED"
)

// Activity represents an append-only log entry describing a domain event.
// Description is rendered once at creation from the then-current display
// names; it is never re-derived.
type Activity struct {
	ID               uuid.UUID    `json:"id" gorm:"type:uuid;primary_key"`
	Type             ActivityType `json:"type"`
	ActorID          uuid.UUID    `json:"actorId"`
	SecondaryActorID *uuid.UUID   `json:"secondaryActorId,omitempty"`
	CropID           *uuid.UUID   `json:"cropId,omitempty"`
	Description      string       `json:"description"`
	Read             bool         `json:"read"`
	CreatedAt        time.Time    `json:"createdAt"`
}

package entities

import "time"

// StateSnapshot is the whole-state document the durable store safety net
// writes on an interval. One JSON document, shaped like the entity store.
type StateSnapshot struct {
	TakenAt      time.Time            `json:"takenAt"`
	Users        []*User              `json:"users"`
	Crops        []*Crop              `json:"crops"`
	Transactions []*Transaction       `json:"transactions"`
	Orders       []*Order             `json:"orders"`
	Requests     []*ConnectionRequest `json:"connectionRequests"`
	Connections  []*Connection        `json:"connections"`
	Messages     []*Message           `json:"messages"`
	Activities   []*Activity          `json:"activities"`
}

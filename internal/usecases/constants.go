package usecases

import "time"

// FeedDisplayLimit caps how many activity records a feed query returns. The
// underlying log is unbounded.
const FeedDisplayLimit = 20

// Session settings for the optional encrypted server-side session
const (
	SessionIDLength   = 32
	SessionExpiry     = 7 * 24 * time.Hour
	SessionKeyPrefix  = "session:"
	LedgerDefaultPage = 50
)

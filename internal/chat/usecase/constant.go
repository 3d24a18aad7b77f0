package usecase

import "time"

const (
	DefaultMaxHistory  = 100
	DefaultSessionTTL  = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// Log prefixes
const (
	LogPrefixSend  = "internal.chat.usecase.Send"
	LogPrefixReset = "internal.chat.usecase.Reset"
)

package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	maxErrorBodyBytes = 1 << 20
)

// Backends
const (
	BackendREST = "rest"
	BackendSDK  = "sdk"
)

// Roles
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Finish reasons reported on a Response.
const (
	FinishReasonStop       = "STOP"
	FinishReasonMaxTokens  = "MAX_TOKENS"
	FinishReasonSafety     = "SAFETY"
	FinishReasonRecitation = "RECITATION"
	FinishReasonOther      = "OTHER"
)

package checks

const (
	// ProbeModel is the model the live chat check talks to.
	ProbeModel = "gemini-2.5-flash"
	// ProbePrompt is the message sent by the live chat check.
	ProbePrompt = "Say 'Hello World' in response."

	HealthPath = "/api/health"
)

// Issue messages.
const (
	IssueStaticDirMissing   = "static directory '%s' not found"
	IssueStaticFileMissing  = "front-end file '%s' missing"
	IssueNoAPIKey           = "Cannot test without API key"
	IssueEmptyResponse      = "Empty response from chatbot"
	IssueChatbotFailed      = "Chatbot test failed: %v"
	IssueHealthStatus       = "Health endpoint returned %d"
	IssueWebServerFailed    = "Web server test failed: %v"
	IssueWebServerNotWired  = "Web server test failed: no handler configured"
	IssueDispatcherNotWired = "Chatbot test failed: no dispatcher configured"
)

const logPrefix = "internal.checks.Run"

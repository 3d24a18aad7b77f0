package checks

import (
	"context"
	"io"
	"net/http"

	"gemini-chatbot/internal/dispatcher"
	"gemini-chatbot/internal/setting"
)

// Report statuses.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Report is the persisted outcome of one run.
type Report struct {
	Timestamp   string   `json:"timestamp"`
	TotalIssues int      `json:"total_issues"`
	Issues      []string `json:"issues"`
	Status      string   `json:"status"`
}

// Passed reports whether the run found no issues.
func (r Report) Passed() bool {
	return r.Status == StatusPass
}

// Check is one named group of checks. It returns the issues it found.
type Check struct {
	Name string
	Run  func(ctx context.Context) []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Settings setting.Settings

	// NewDispatcher builds the dispatcher used by the live chat check.
	NewDispatcher func(modelID string) (dispatcher.Dispatcher, error)

	// WebHandler is the routed HTTP server. Nil fails the web check.
	WebHandler http.Handler

	// StaticDir and RequiredFiles describe the front-end checked by the
	// environment check.
	StaticDir     string
	RequiredFiles []string

	// Out receives the human readable progress. Nil discards it.
	Out io.Writer
}

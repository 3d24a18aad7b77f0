package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"gemini-chatbot/pkg/log"
)

// Runner runs the self-checks and produces a Report.
type Runner struct {
	l      log.Logger
	cfg    Config
	out    io.Writer
	now    func() time.Time
	checks []Check
}

// New creates a Runner with the environment, configuration, chat and web
// checks, in that order.
func New(l log.Logger, cfg Config) *Runner {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	r := &Runner{
		l:   l,
		cfg: cfg,
		out: out,
		now: time.Now,
	}
	r.checks = []Check{
		{Name: "Environment Setup", Run: r.checkEnvironment},
		{Name: "Configuration", Run: r.checkConfig},
		{Name: "Basic Functionality", Run: r.checkChat},
		{Name: "Web Server", Run: r.checkWebServer},
	}
	return r
}

// Run executes every check and collects all issues. A failing check never
// stops the later ones.
func (r *Runner) Run(ctx context.Context) Report {
	issues := []string{}
	for _, c := range r.checks {
		fmt.Fprintf(r.out, "Testing %s...\n", c.Name)
		found := c.Run(ctx)
		if len(found) == 0 {
			fmt.Fprintf(r.out, "  ok\n")
		}
		for _, issue := range found {
			fmt.Fprintf(r.out, "  issue: %s\n", issue)
		}
		issues = append(issues, found...)
	}

	report := Report{
		Timestamp:   r.now().Format(time.RFC3339),
		TotalIssues: len(issues),
		Issues:      issues,
		Status:      StatusPass,
	}
	if len(issues) > 0 {
		report.Status = StatusFail
		r.l.Warnf(ctx, "%s: %d issue(s) found", logPrefix, len(issues))
	} else {
		r.l.Infof(ctx, "%s: all checks passed", logPrefix)
	}
	return report
}

func (r *Runner) checkEnvironment(ctx context.Context) []string {
	if r.cfg.StaticDir == "" {
		return nil
	}
	info, err := os.Stat(r.cfg.StaticDir)
	if err != nil || !info.IsDir() {
		return []string{fmt.Sprintf(IssueStaticDirMissing, r.cfg.StaticDir)}
	}

	var issues []string
	for _, name := range r.cfg.RequiredFiles {
		if _, err := os.Stat(filepath.Join(r.cfg.StaticDir, name)); err != nil {
			issues = append(issues, fmt.Sprintf(IssueStaticFileMissing, name))
		}
	}
	return issues
}

func (r *Runner) checkConfig(ctx context.Context) []string {
	return r.cfg.Settings.Validate().Issues
}

func (r *Runner) checkChat(ctx context.Context) []string {
	if r.cfg.Settings.APIKey == "" {
		return []string{IssueNoAPIKey}
	}
	if r.cfg.NewDispatcher == nil {
		return []string{IssueDispatcherNotWired}
	}

	d, err := r.cfg.NewDispatcher(ProbeModel)
	if err != nil {
		return []string{fmt.Sprintf(IssueChatbotFailed, err)}
	}

	reply, err := d.GetResponse(ctx, ProbePrompt)
	if err != nil {
		r.l.Errorf(ctx, "%s: chat probe: %v", logPrefix, err)
		return []string{fmt.Sprintf(IssueChatbotFailed, err)}
	}
	if reply == "" {
		return []string{IssueEmptyResponse}
	}
	return nil
}

func (r *Runner) checkWebServer(ctx context.Context) (issues []string) {
	if r.cfg.WebHandler == nil {
		return []string{IssueWebServerNotWired}
	}

	defer func() {
		if p := recover(); p != nil {
			issues = []string{fmt.Sprintf(IssueWebServerFailed, p)}
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, HealthPath, nil)
	if err != nil {
		return []string{fmt.Sprintf(IssueWebServerFailed, err)}
	}
	w := httptest.NewRecorder()
	r.cfg.WebHandler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return []string{fmt.Sprintf(IssueHealthStatus, w.Code)}
	}
	return nil
}

// WriteJSON writes the report to path as indented JSON.
func WriteJSON(path string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"gemini-chatbot/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chatbot specifics
	Gemini GeminiConfig
	Chat   ChatConfig
	Static StaticConfig
	Checks ChecksConfig
	Deploy DeployConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig holds the settings of the hosted model API.
type GeminiConfig struct {
	APIKey            string
	DefaultModel      string
	APIURL            string
	Backend           string // "rest" or "sdk"
	Timeout           time.Duration
	SystemInstruction string
	SafetyRules       []model.SafetyRule
}

// ChatConfig controls history buffering and pacing of chat sessions.
type ChatConfig struct {
	MaxHistory      int
	RateLimitDelay  time.Duration
	SessionTTL      time.Duration
	MaxSessions     int
	RateLimitPerMin int
}

type StaticConfig struct {
	Dir         string
	OpenBrowser bool
}

type ChecksConfig struct {
	OutputPath string
}

type DeployConfig struct {
	Files       []string
	PackageName string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first without overriding
// variables already set in the process environment.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The documented variable names do not follow the key path.
	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("gemini.default_model", "DEFAULT_MODEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = strings.TrimSpace(v.GetString("gemini.api_key"))
	// Kept verbatim; an empty or padded DEFAULT_MODEL is reported by validation.
	cfg.Gemini.DefaultModel = v.GetString("gemini.default_model")
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")
	cfg.Gemini.Backend = v.GetString("gemini.backend")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")
	cfg.Gemini.SystemInstruction = v.GetString("gemini.system_instruction")
	cfg.Gemini.SafetyRules = model.DefaultSafetyRules()
	if v.IsSet("gemini.safety_settings") {
		rules, err := parseSafetyRules(v.Get("gemini.safety_settings"))
		if err != nil {
			return nil, err
		}
		cfg.Gemini.SafetyRules = rules
	}

	// Chat
	cfg.Chat.MaxHistory = v.GetInt("chat.max_history")
	cfg.Chat.RateLimitDelay = v.GetDuration("chat.rate_limit_delay")
	cfg.Chat.SessionTTL = v.GetDuration("chat.session_ttl")
	cfg.Chat.MaxSessions = v.GetInt("chat.max_sessions")
	cfg.Chat.RateLimitPerMin = v.GetInt("chat.rate_limit_per_min")

	// Static front-end
	cfg.Static.Dir = v.GetString("static.dir")
	cfg.Static.OpenBrowser = v.GetBool("static.open_browser")

	// Checks & deployment
	cfg.Checks.OutputPath = v.GetString("checks.output_path")
	cfg.Deploy.PackageName = v.GetString("deploy.package_name")
	cfg.Deploy.Files = splitList(v.Get("deploy.files"))

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.host", "0.0.0.0")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Gemini defaults
	v.SetDefault("gemini.default_model", model.DefaultModelID)
	v.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.backend", "rest")
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("gemini.system_instruction", model.DefaultSystemInstruction)

	// Chat defaults
	v.SetDefault("chat.max_history", 100)
	v.SetDefault("chat.rate_limit_delay", "100ms")
	v.SetDefault("chat.session_ttl", "30m")
	v.SetDefault("chat.max_sessions", 1000)
	v.SetDefault("chat.rate_limit_per_min", 60)

	v.SetDefault("static.dir", "web")
	v.SetDefault("static.open_browser", false)
	v.SetDefault("checks.output_path", "test_results.json")
	v.SetDefault("deploy.package_name", "chatbot_deployment.zip")
	v.SetDefault("deploy.files", []string{"chatbot_web.html", "index.html"})
}

// parseSafetyRules reads a list of {category, threshold} maps.
func parseSafetyRules(raw interface{}) ([]model.SafetyRule, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("gemini.safety_settings must be a list")
	}

	rules := make([]model.SafetyRule, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("gemini.safety_settings[%d] must be a mapping", i)
		}
		category := getStringFromMap(m, "category")
		threshold := getStringFromMap(m, "threshold")
		if category == "" || threshold == "" {
			return nil, fmt.Errorf("gemini.safety_settings[%d]: category and threshold are required", i)
		}
		rule := model.SafetyRule{
			Category:  model.HarmCategory(category),
			Threshold: model.BlockThreshold(threshold),
		}
		if !rule.Category.Valid() {
			return nil, fmt.Errorf("gemini.safety_settings[%d]: unknown category %q", i, category)
		}
		if !rule.Threshold.Valid() {
			return nil, fmt.Errorf("gemini.safety_settings[%d]: unknown threshold %q", i, threshold)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// splitList accepts either a YAML list or a comma separated env value.
func splitList(raw interface{}) []string {
	var items []string
	switch val := raw.(type) {
	case []string:
		items = val
	case []interface{}:
		for _, it := range val {
			if s, ok := it.(string); ok {
				items = append(items, s)
			}
		}
	case string:
		items = strings.Split(val, ",")
	}

	var out []string
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

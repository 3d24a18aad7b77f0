package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"gemini-chatbot/internal/chat"
	"gemini-chatbot/internal/dispatcher"
	"gemini-chatbot/internal/setting"
	"gemini-chatbot/pkg/log"
)

// DispatcherFactory returns the dispatcher serving modelID.
type DispatcherFactory func(modelID string) (dispatcher.Dispatcher, error)

// Config tunes session handling.
type Config struct {
	MaxHistory     int
	RateLimitDelay time.Duration
	SessionTTL     time.Duration
	MaxSessions    int
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l        log.Logger
	settings setting.Settings
	factory  DispatcherFactory
	cfg      Config

	sessions *expirable.LRU[string, *session]

	dispatchersMu sync.Mutex
	dispatchers   map[string]dispatcher.Dispatcher
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(l log.Logger, settings setting.Settings, factory DispatcherFactory, cfg Config) *implUseCase {
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}

	return &implUseCase{
		l:           l,
		settings:    settings,
		factory:     factory,
		cfg:         cfg,
		sessions:    expirable.NewLRU[string, *session](cfg.MaxSessions, nil, cfg.SessionTTL),
		dispatchers: make(map[string]dispatcher.Dispatcher),
	}
}

// DispatcherFactoryFromConfig builds dispatchers from a base config, one per
// model identifier.
func DispatcherFactoryFromConfig(l log.Logger, base dispatcher.Config) DispatcherFactory {
	return func(modelID string) (dispatcher.Dispatcher, error) {
		cfg := base
		cfg.Model = modelID
		return dispatcher.New(l, cfg)
	}
}

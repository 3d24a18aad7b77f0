package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gemini-chatbot/internal/chat"
	"gemini-chatbot/internal/middleware"
	"gemini-chatbot/internal/setting"
	"gemini-chatbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	staticDir   string

	mw middleware.Middleware

	// Settings domain
	settings setting.Settings

	// Chat domain
	chatUC chat.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// StaticDir holds the browser front-end. Empty disables static serving.
	StaticDir string

	Middleware middleware.Middleware

	Settings setting.Settings
	ChatUC   chat.UseCase
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		staticDir:   cfg.StaticDir,
		mw:          cfg.Middleware,
		settings:    cfg.Settings,
		chatUC:      cfg.ChatUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skratchdot/open-golang/open"

	"gemini-chatbot/config"
	_ "gemini-chatbot/docs" // Swagger docs
	chatUC "gemini-chatbot/internal/chat/usecase"
	"gemini-chatbot/internal/dispatcher"
	"gemini-chatbot/internal/httpserver"
	"gemini-chatbot/internal/middleware"
	"gemini-chatbot/internal/setting"
	"gemini-chatbot/pkg/log"
)

// @title       Gemini Chatbot API
// @description Chat with Google Gemini models from the browser or the command line.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Gemini Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Settings
	settings := setting.FromConfig(cfg)
	if result := settings.Validate(); !result.Valid {
		for _, issue := range result.Issues {
			logger.Warnf(ctx, "Configuration issue: %s", issue)
		}
		logger.Warn(ctx, "Chat requests will fail until the configuration is fixed")
	} else {
		logger.Infof(ctx, "Default model: %s", settings.DefaultModel)
	}

	// 4. Chat domain
	factory := chatUC.DispatcherFactoryFromConfig(logger, dispatcher.Config{
		APIKey:            cfg.Gemini.APIKey,
		APIURL:            cfg.Gemini.APIURL,
		Backend:           cfg.Gemini.Backend,
		Timeout:           cfg.Gemini.Timeout,
		SystemInstruction: cfg.Gemini.SystemInstruction,
		SafetyRules:       cfg.Gemini.SafetyRules,
	})
	uc := chatUC.New(logger, settings, factory, chatUC.Config{
		MaxHistory:     cfg.Chat.MaxHistory,
		RateLimitDelay: cfg.Chat.RateLimitDelay,
		SessionTTL:     cfg.Chat.SessionTTL,
		MaxSessions:    cfg.Chat.MaxSessions,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		StaticDir:   cfg.Static.Dir,
		Middleware:  middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.Chat.RateLimitPerMin}),
		Settings:    settings,
		ChatUC:      uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	chatURL := fmt.Sprintf("http://localhost:%d/chatbot_web.html", cfg.HTTPServer.Port)
	logger.Infof(ctx, "Chatbot interface: %s", chatURL)
	if cfg.Static.OpenBrowser {
		time.AfterFunc(time.Second, func() {
			if err := open.Run(chatURL); err != nil {
				logger.Warnf(ctx, "Could not open browser automatically: %v", err)
			}
		})
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

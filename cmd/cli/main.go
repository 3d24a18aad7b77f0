package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gemini-chatbot/config"
	chatUC "gemini-chatbot/internal/chat/usecase"
	"gemini-chatbot/internal/cli"
	"gemini-chatbot/internal/deploy"
	"gemini-chatbot/internal/dispatcher"
	"gemini-chatbot/internal/httpserver"
	"gemini-chatbot/internal/middleware"
	"gemini-chatbot/internal/setting"
	"gemini-chatbot/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// Logs go to stderr and stay quiet unless configured otherwise; the
	// terminal belongs to the conversation.
	logLevel := cfg.Logger.Level
	if os.Getenv("LOGGER_LEVEL") == "" {
		logLevel = "warn"
	}
	logger := log.Init(log.ZapConfig{
		Level:        logLevel,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := setting.FromConfig(cfg)
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

	app := &cli.App{
		Logger:        logger,
		Settings:      settings,
		ChatUC:        uc,
		NewDispatcher: factory,
		WebHandler: func() (http.Handler, error) {
			srv, err := httpserver.New(logger, httpserver.Config{
				Logger:      logger,
				Host:        cfg.HTTPServer.Host,
				Port:        cfg.HTTPServer.Port,
				Mode:        "release",
				Environment: cfg.Environment.Name,
				StaticDir:   cfg.Static.Dir,
				Middleware:  middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.Chat.RateLimitPerMin}),
				Settings:    settings,
				ChatUC:      uc,
			})
			if err != nil {
				return nil, err
			}
			return srv.Handler(), nil
		},
		Deployer: deploy.New(logger, deploy.Config{
			Dir:         cfg.Static.Dir,
			Files:       cfg.Deploy.Files,
			PackageName: cfg.Deploy.PackageName,
		}),
		StaticDir:     cfg.Static.Dir,
		RequiredFiles: cfg.Deploy.Files,
		CheckOutput:   cfg.Checks.OutputPath,
		Port:          cfg.HTTPServer.Port,
	}

	root := cli.NewRootCmd(app)
	root.SetOut(os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

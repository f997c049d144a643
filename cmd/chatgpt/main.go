package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aschepis/backscratcher/chatgpt/cli"
	"github.com/aschepis/backscratcher/chatgpt/config"
	"github.com/aschepis/backscratcher/chatgpt/llm"
	chatlogger "github.com/aschepis/backscratcher/chatgpt/logger"
	"github.com/aschepis/backscratcher/chatgpt/notify"
	"github.com/aschepis/backscratcher/chatgpt/review"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	// Configuration: defaults, then config file, then command-line flags
	configPath := cli.ConfigPath(args)
	if configPath == "" {
		configPath = config.GetConfigPath()
	}
	fileConfig, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	inv := cli.Parse(args, fileConfig)
	cfg := inv.Config

	logger, err := chatlogger.InitWithOptions(chatlogger.Options{
		LogFile: cfg.Log.File,
		Pretty:  cfg.Log.Pretty,
		Level:   cfg.Log.Level,
		Secrets: []string{cfg.APIKey},
		Out:     stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := chatlogger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	logger.Debug().Msg(cli.Usage)
	for _, arg := range args {
		logger.Debug().Str("arg", arg).Msg("Command-line argument")
	}
	for _, flag := range inv.Ignored {
		logger.Warn().Str("flag", flag).Msg("Ignoring unrecognized flag")
	}
	if inv.Dangling != "" {
		logger.Warn().Str("flag", inv.Dangling).Msg("Flag is missing its value")
	}

	logger.Info().
		Str("mode", inv.Mode.String()).
		Str("config", configPath).
		Str("projectId", cfg.ProjectID).
		Str("organizationId", cfg.OrganizationID).
		Str("apiKey", cfg.APIKey).
		Str("model", cfg.Model).
		Bool("appendClipboard", cfg.AppendClipboard()).
		Msg("Starting")

	// ---------------------------
	// Provider client
	// ---------------------------

	client, err := config.NewOpenAIClient(cfg, logger)
	if err != nil {
		return err
	}

	svc := review.NewService(
		cfg,
		llm.WrapWithMiddleware(client, llm.NewLoggingMiddleware(logger)),
		client,
		logger,
	)

	// ---------------------------
	// Dispatch
	// ---------------------------

	switch inv.Mode {
	case cli.ModeRequest:
		content, err := svc.Submit(ctx, inv.RequestFile)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stdout, content); err != nil {
			return fmt.Errorf("failed to write reply: %w", err)
		}
		if cfg.Notify {
			notify.Send(notify.Desktop{}, "Review ready", content, logger)
		}
	default:
		models, err := svc.ListModels(ctx)
		if err != nil {
			return err
		}
		for _, model := range review.Sorted(models) {
			if _, err := fmt.Fprintln(stdout, model); err != nil {
				return fmt.Errorf("failed to write model list: %w", err)
			}
		}
	}

	logger.Debug().Msg("Done")
	return nil
}

// Package main provides the CLI entrypoint for the numerology report service.
// It wires subcommands (serve, report), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numerology/internal/advisor"
	"numerology/internal/config"
	"numerology/internal/report"
	"numerology/pkg/logger"
	"numerology/pkg/metrics"
	"numerology/pkg/textgen/openaigen"
)

// newRunner builds the report pipeline from configuration: the OpenAI-backed
// text generator, the advice orchestrator on top of it, and the runner.
// m may be nil when no metrics are exported (the one-shot report command).
func newRunner(ctx context.Context, cfg *config.Config, m *metrics.Pipeline) report.Runner {
	gen, err := openaigen.New(ctx, openaigen.Options{
		BaseURL: cfg.Advice.BaseURL,
		APIKey:  cfg.Advice.APIKey,
		Model:   cfg.Advice.Model,
		Timeout: cfg.Advice.RequestTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create text generator", zap.Error(err))
	}

	return report.New(advisor.New(gen, m), m, report.NewOptions(cfg))
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "numerology",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		reportCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// Command contentgen runs the content generation pipeline for one product
// record and writes the generated pages as JSON files.
//
// Usage:
//
//	contentgen -input product.json [-config config.yaml] [-output outputs]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/config"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/llm"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/logger"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/observability"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/resilience"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/sink"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/version"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/workflow"
)

func main() {
	var (
		inputPath   = flag.String("input", "", "path to the product record JSON file")
		configPath  = flag.String("config", "", "path to the config file (default: auto-discover)")
		outputDir   = flag.String("output", "", "output directory (overrides config)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get().String())
		return
	}

	if err := run(*inputPath, *configPath, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "contentgen: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, configPath, outputDir string) error {
	if inputPath == "" {
		return fmt.Errorf("-input is required")
	}

	var opts []config.LoaderOption
	if configPath != "" {
		opts = append(opts, config.WithConfigFile(configPath))
	}
	var cfg config.AppConfig
	if err := config.Load(&cfg, opts...); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(&cfg.Logging, cfg.Service.Name)
	logger.SetGlobalLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, cfg.Tracing)
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		mp, err := observability.InitMeter(ctx, cfg.Metrics)
		if err != nil {
			return fmt.Errorf("init meter: %w", err)
		}
		defer func() { _ = mp.Shutdown(context.Background()) }()

		metrics, err = observability.NewMetrics(observability.Meter(cfg.Service.Name))
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
	}

	record, err := readRecord(inputPath)
	if err != nil {
		return err
	}

	if cfg.LLM.Retry == nil {
		retry := resilience.DefaultRetryConfig()
		cfg.LLM.Retry = &retry
	}
	provider, err := llm.New(cfg.LLM)
	if err != nil {
		return fmt.Errorf("create llm client: %w", err)
	}

	store, err := sink.NewFileSink(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("create sink: %w", err)
	}

	w, err := workflow.New(workflow.Config{
		MinQuestions: cfg.Pipeline.MinQuestions,
		FAQSize:      cfg.Pipeline.FAQSize,
		MaxParallel:  cfg.Pipeline.MaxParallel,
		Metrics:      metrics,
	}, provider, store, log)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	result, err := w.Run(ctx, record)
	if err != nil {
		return err
	}

	for _, a := range result.Artifacts {
		log.Info("artifact written", logger.Fields(
			logger.FieldArtifact, a.Name,
			"path", a.Path,
			"bytes", a.Size,
		))
	}
	for _, e := range result.Errors {
		log.Warn("stage error", logger.Fields(
			logger.FieldStage, e.StageID,
			"code", string(e.Code),
			logger.FieldError, e.Message,
		))
	}

	if len(result.Artifacts) == 0 {
		return fmt.Errorf("no artifacts produced (%d errors)", len(result.Errors))
	}
	return nil
}

func readRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.InvalidInput("raw_record", "input is not a JSON object: "+err.Error())
	}
	return record, nil
}

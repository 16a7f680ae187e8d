package dag

import (
	"context"
	"time"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/logger"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/observability"
)

// WithTracing wraps a Stage with OpenTelemetry span creation.
// Each execution creates a span named "{prefix}.{stageID}".
func WithTracing(st Stage, prefix string) Stage {
	return &tracingStage{inner: st, prefix: prefix}
}

type tracingStage struct {
	inner  Stage
	prefix string
}

func (s *tracingStage) ID() string             { return s.inner.ID() }
func (s *tracingStage) Reads() []Input         { return s.inner.Reads() }
func (s *tracingStage) Writes() []string       { return s.inner.Writes() }
func (s *tracingStage) Capability() Capability { return s.inner.Capability() }

func (s *tracingStage) Run(ctx context.Context, state *State) error {
	ctx, span := observability.StartSpan(ctx, s.prefix+"."+s.inner.ID())
	defer span.End()

	observability.SetSpanAttribute(ctx, "dag.stage", s.inner.ID())
	observability.SetSpanAttribute(ctx, "dag.capability", string(s.inner.Capability()))

	err := s.inner.Run(ctx, state)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return err
}

// WithMetrics wraps a Stage with metric recording.
func WithMetrics(st Stage, metrics *observability.Metrics) Stage {
	return &metricsStage{inner: st, metrics: metrics}
}

type metricsStage struct {
	inner   Stage
	metrics *observability.Metrics
}

func (s *metricsStage) ID() string             { return s.inner.ID() }
func (s *metricsStage) Reads() []Input         { return s.inner.Reads() }
func (s *metricsStage) Writes() []string       { return s.inner.Writes() }
func (s *metricsStage) Capability() Capability { return s.inner.Capability() }

func (s *metricsStage) Run(ctx context.Context, state *State) error {
	start := time.Now()
	err := s.inner.Run(ctx, state)
	duration := time.Since(start)

	status := string(StatusCompleted)
	if err != nil {
		status = string(StatusFailed)
	}
	s.metrics.RecordStage(ctx, s.inner.ID(), status, duration)
	return err
}

// WithLogging wraps a Stage with execution logging.
func WithLogging(st Stage, log *logger.Logger) Stage {
	return &loggingStage{inner: st, log: log}
}

type loggingStage struct {
	inner Stage
	log   *logger.Logger
}

func (s *loggingStage) ID() string             { return s.inner.ID() }
func (s *loggingStage) Reads() []Input         { return s.inner.Reads() }
func (s *loggingStage) Writes() []string       { return s.inner.Writes() }
func (s *loggingStage) Capability() Capability { return s.inner.Capability() }

func (s *loggingStage) Run(ctx context.Context, state *State) error {
	start := time.Now()
	err := s.inner.Run(ctx, state)
	duration := time.Since(start)

	fields := logger.Fields(
		logger.FieldStage, s.inner.ID(),
		logger.FieldDuration, duration.String(),
	)
	if err != nil {
		fields[logger.FieldError] = err.Error()
		s.log.Error("stage failed", fields)
	} else {
		s.log.Debug("stage completed", fields)
	}
	return err
}

package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/liquidkit/pkg/cache"
	"github.com/dmitrymomot/liquidkit/pkg/liquid"
	"github.com/dmitrymomot/liquidkit/pkg/logger"
	"github.com/dmitrymomot/liquidkit/pkg/ratelimiter"
)

// Service applies filters, pipelines and presets.
type Service struct {
	reg     *liquid.Registry
	presets liquid.Presets
	log     *slog.Logger

	pipelines *cache.LRU[string, liquid.Pipeline]
	limiter   *ratelimiter.Bucket
}

// Option configures a Service.
type Option func(*Service)

// WithRegistry replaces the standard filter registry.
func WithRegistry(reg *liquid.Registry) Option {
	return func(s *Service) {
		if reg != nil {
			s.reg = reg
		}
	}
}

// WithPresets sets the presets directly instead of loading them from Config.PresetsFile.
func WithPresets(p liquid.Presets) Option {
	return func(s *Service) {
		s.presets = p
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService builds a Service. When cfg.PresetsFile is set and no presets were
// supplied via WithPresets, the file is loaded and validated against the registry.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	s := &Service{
		reg: liquid.NewRegistry(),
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.presets == nil && cfg.PresetsFile != "" {
		p, err := liquid.LoadPresetsFile(cfg.PresetsFile, s.reg)
		if err != nil {
			return nil, fmt.Errorf("load presets %s: %w", cfg.PresetsFile, err)
		}
		s.presets = p
		s.log.Info("presets loaded",
			slog.Int("count", len(p)),
			slog.String("file", cfg.PresetsFile),
			logger.Component("render"),
		)
	}
	if s.presets == nil {
		s.presets = liquid.Presets{}
	}
	if cfg.PipelineCacheSize > 0 {
		s.pipelines = cache.NewLRU[string, liquid.Pipeline](cfg.PipelineCacheSize)
	}
	if cfg.RateLimit.Enabled() {
		b, err := ratelimiter.NewBucket(cfg.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
		s.limiter = b
	}
	return s, nil
}

// Filters returns the registered filter names.
func (s *Service) Filters() []string {
	return s.reg.Names()
}

// Presets returns the preset names.
func (s *Service) Presets() []string {
	return s.presets.Names()
}

// Apply runs a single filter.
func (s *Service) Apply(ctx context.Context, name string, input any, args ...any) (string, error) {
	start := time.Now()
	out, err := s.reg.Apply(name, input, args...)
	if err != nil {
		return "", err
	}
	s.log.DebugContext(ctx, "filter applied",
		logger.Filter(name),
		logger.Duration(time.Since(start)),
		logger.Component("render"),
	)
	return out, nil
}

// Render runs either the pipeline expression or the named preset. With
// neither set the input passes through unchanged.
func (s *Service) Render(ctx context.Context, input any, pipeline, preset string) (string, error) {
	if pipeline != "" && preset != "" {
		return "", ErrConflictingSource
	}

	start := time.Now()
	attr := logger.Pipeline(pipeline)

	var p liquid.Pipeline
	var err error
	if preset != "" {
		attr = logger.Preset(preset)
		p, err = s.presets.Get(preset)
	} else {
		p, err = s.pipeline(pipeline)
	}
	if err != nil {
		return "", err
	}

	out, err := p.Render(s.reg, input)
	if err != nil {
		return "", err
	}
	s.log.DebugContext(ctx, "pipeline rendered",
		attr,
		slog.Int("steps", len(p.Steps)),
		logger.Duration(time.Since(start)),
		logger.Component("render"),
	)
	return out, nil
}

// pipeline parses and validates expr, going through the cache when enabled.
func (s *Service) pipeline(expr string) (liquid.Pipeline, error) {
	load := func() (liquid.Pipeline, error) {
		p, err := liquid.ParsePipeline(expr)
		if err != nil {
			return liquid.Pipeline{}, err
		}
		if err := p.Validate(s.reg); err != nil {
			return liquid.Pipeline{}, fmt.Errorf("%w: %w", liquid.ErrInvalidPipeline, err)
		}
		return p, nil
	}
	if s.pipelines == nil {
		return load()
	}
	return s.pipelines.GetOrLoad(expr, load)
}

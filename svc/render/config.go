package render

import "github.com/dmitrymomot/liquidkit/pkg/ratelimiter"

// Config holds the service settings. A PipelineCacheSize of 0 disables the
// parsed pipeline cache and a RateLimit capacity of 0 disables rate limiting.
type Config struct {
	PresetsFile       string `env:"RENDER_PRESETS_FILE"`
	MaxBodyBytes      int64  `env:"RENDER_MAX_BODY_BYTES" envDefault:"1048576"`
	PipelineCacheSize int    `env:"RENDER_PIPELINE_CACHE_SIZE" envDefault:"256"`
	RateLimit         ratelimiter.Config
}

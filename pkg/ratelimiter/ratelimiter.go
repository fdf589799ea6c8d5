package ratelimiter

import (
	"fmt"
	"sync"
	"time"
)

const staleAfter = time.Hour

// Config defines the token bucket. A zero Capacity disables limiting in
// callers that check Enabled.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"120"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"2"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
}

// Enabled reports whether the config asks for rate limiting.
func (c Config) Enabled() bool {
	return c.Capacity > 0
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of a single check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter returns how long a denied caller should wait.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

type state struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Bucket is a set of token buckets, one per key.
type Bucket struct {
	cfg Config
	now func() time.Time

	mu        sync.Mutex
	buckets   map[string]*state
	lastSweep time.Time
}

// Option configures a Bucket.
type Option func(*Bucket)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Bucket) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBucket validates cfg and creates an empty Bucket.
func NewBucket(cfg Config, opts ...Option) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	b := &Bucket{
		cfg:     cfg,
		now:     time.Now,
		buckets: make(map[string]*state),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.lastSweep = b.now()
	return b, nil
}

// Allow consumes one token for key.
func (b *Bucket) Allow(key string) Result {
	res, _ := b.AllowN(key, 1)
	return res
}

// AllowN consumes n tokens for key when that many are available.
func (b *Bucket) AllowN(key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.sweep(now)

	s, ok := b.buckets[key]
	if !ok {
		s = &state{tokens: b.cfg.Capacity, lastRefill: now}
		b.buckets[key] = s
	}
	s.lastAccess = now

	if intervals := int64(now.Sub(s.lastRefill) / b.cfg.RefillInterval); intervals > 0 {
		// Past this many intervals the bucket is full; the cap keeps the multiplication in range.
		if intervals > int64(b.cfg.Capacity/b.cfg.RefillRate) {
			s.tokens = b.cfg.Capacity
		} else {
			s.tokens = min(s.tokens+int(intervals)*b.cfg.RefillRate, b.cfg.Capacity)
		}

		// A partial interval carries over to the next refill unless the bucket is full.
		if s.tokens == b.cfg.Capacity {
			s.lastRefill = now
		} else {
			s.lastRefill = s.lastRefill.Add(time.Duration(intervals) * b.cfg.RefillInterval)
		}
	}

	res := Result{
		Limit:   b.cfg.Capacity,
		ResetAt: s.lastRefill.Add(b.cfg.RefillInterval),
	}
	if s.tokens >= n {
		s.tokens -= n
		res.Allowed = true
	}
	res.Remaining = s.tokens
	return res, nil
}

// Reset forgets the state of key.
func (b *Bucket) Reset(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.buckets, key)
}

// Len returns the number of tracked keys.
func (b *Bucket) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buckets)
}

// sweep drops idle buckets at most once per staleAfter. Caller holds mu.
func (b *Bucket) sweep(now time.Time) {
	if now.Sub(b.lastSweep) < staleAfter {
		return
	}
	for key, s := range b.buckets {
		if now.Sub(s.lastAccess) > staleAfter {
			delete(b.buckets, key)
		}
	}
	b.lastSweep = now
}

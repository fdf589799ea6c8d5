// Package ratelimiter implements an in-memory token bucket keyed by an
// arbitrary string, plus an HTTP middleware that sets the usual
// X-RateLimit-* headers.
//
//	b, err := ratelimiter.NewBucket(ratelimiter.Config{Capacity: 60, RefillRate: 1, RefillInterval: time.Second})
//	r.Use(ratelimiter.Middleware(b, ratelimiter.ByClientIP, tooManyRequests))
//
// Each key starts full. Every RefillInterval adds RefillRate tokens up to
// Capacity. Denied requests do not consume tokens. Buckets idle for longer
// than the stale threshold are swept lazily during Allow.
package ratelimiter

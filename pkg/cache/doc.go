// Package cache provides a generic, concurrency-safe LRU cache.
//
// The render service keeps parsed filter pipelines here so repeated preview
// requests with the same expression skip parsing and validation:
//
//	c := cache.NewLRU[string, liquid.Pipeline](256)
//	p, err := c.GetOrLoad(expr, func() (liquid.Pipeline, error) {
//		return liquid.ParsePipeline(expr)
//	})
//
// Failed loads are not cached.
package cache

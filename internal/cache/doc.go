// Package cache provides a generic, bounded LRU cache.
//
//	c := cache.New[string, *Layout](100)
//	l, err := c.GetOrCreate("key", func() (*Layout, error) { return build() })
//
// Text layouts, glyph masks and GPU images are cached with it. Each user
// owns its own Cache; there is no global instance.
package cache

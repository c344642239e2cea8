// Package cache provides a small generic LRU cache.
//
// It is used to keep rasterized glyph layer masks around between emoji:
// color fonts reuse the same layer glyphs (faces, hands, outlines) across
// hundreds of sequences, so one mask is typically drawn many times.
//
//	c := cache.New[maskKey, *image.Alpha](4096)
//	mask, err := c.GetOrLoad(key, func() (*image.Alpha, error) {
//	    return rasterize(key)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
// Cached values are shared between callers and must be treated as read-only.
package cache

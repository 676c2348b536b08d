package imageload

import (
	"image"

	"github.com/hay-kot/reviewdeck/pkg/kv"
)

// Cache maps URL strings to decoded images. Entries never expire; writes to
// the same key are last-write-wins. Safe for concurrent use.
type Cache struct {
	store *kv.Store[string, image.Image]
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{store: kv.New[string, image.Image]()}
}

// Get returns the image stored for key.
func (c *Cache) Get(key string) (image.Image, bool) {
	return c.store.Get(key)
}

// Set stores img under key. Nil images are ignored.
func (c *Cache) Set(key string, img image.Image) {
	if img == nil {
		return
	}
	c.store.Set(key, img)
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	return c.store.Len()
}

package docstore

import (
	"sync"

	"github.com/MKhiriev/memclip/models"
)

// BlobCache is the node-local content-addressed store. When the total size
// exceeds capacity the oldest blobs are evicted first. A non-positive
// capacity disables eviction.
type BlobCache struct {
	mu       sync.RWMutex
	blobs    map[models.ContentID][]byte
	order    []models.ContentID
	size     int64
	capacity int64
}

// NewBlobCache creates an empty cache bounded to capacity bytes.
func NewBlobCache(capacity int64) *BlobCache {
	return &BlobCache{
		blobs:    make(map[models.ContentID][]byte),
		capacity: capacity,
	}
}

// Put stores data under id. Re-putting a known id is a no-op.
func (c *BlobCache) Put(id models.ContentID, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.blobs[id]; ok {
		return
	}

	c.blobs[id] = data
	c.order = append(c.order, id)
	c.size += int64(len(data))

	// keep at least the blob just written
	for c.capacity > 0 && c.size > c.capacity && len(c.order) > 1 {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.size -= int64(len(c.blobs[oldest]))
		delete(c.blobs, oldest)
	}
}

// Get returns the bytes stored under id.
func (c *BlobCache) Get(id models.ContentID) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, ok := c.blobs[id]
	return data, ok
}

// Has reports whether id is cached.
func (c *BlobCache) Has(id models.ContentID) bool {
	_, ok := c.Get(id)
	return ok
}

// Size returns the number of cached bytes.
func (c *BlobCache) Size() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

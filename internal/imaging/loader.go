package imaging

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// BufferCache holds named raster buffers for the lifetime of a session.
//
// The map itself is guarded by an RWMutex and every buffer has its own mutex,
// so clients can work on different buffers concurrently while each buffer
// only ever sees one mutator at a time.
//
// # Example Usage
//
//	cache := imaging.NewBufferCache()
//	if _, err := cache.LoadFile("screen", "/path/to/frame.png"); err != nil {
//	    log.Fatal(err)
//	}
//	err := cache.With("screen", func(b *raster.Buffer) error {
//	    b.Fill(raster.White)
//	    return nil
//	})
type BufferCache struct {
	mu      sync.RWMutex
	buffers map[string]*cacheEntry
}

type cacheEntry struct {
	mu  sync.Mutex
	buf *raster.Buffer

	// dead marks an entry whose first load failed and that was removed
	// while another caller was waiting for it.
	dead bool
}

// NewBufferCache creates an empty cache.
func NewBufferCache() *BufferCache {
	return &BufferCache{
		buffers: make(map[string]*cacheEntry),
	}
}

// Put stores buf under name, replacing any previous buffer.
func (c *BufferCache) Put(name string, buf *raster.Buffer) {
	c.mu.Lock()
	c.buffers[name] = &cacheEntry{buf: buf}
	c.mu.Unlock()
}

// Has reports whether a buffer named name exists.
func (c *BufferCache) Has(name string) bool {
	c.mu.RLock()
	_, ok := c.buffers[name]
	c.mu.RUnlock()
	return ok
}

func (c *BufferCache) entry(name string) (*cacheEntry, error) {
	c.mu.RLock()
	e, ok := c.buffers[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no buffer named %q", name)
	}
	return e, nil
}

// With runs fn with exclusive access to the named buffer.
func (c *BufferCache) With(name string, fn func(*raster.Buffer) error) error {
	e, err := c.entry(name)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dead {
		return fmt.Errorf("no buffer named %q", name)
	}
	return fn(e.buf)
}

// WithPair runs fn with exclusive access to two buffers. Locks are taken in
// name order so that concurrent calls cannot deadlock. When both names are
// equal fn receives the same buffer twice.
func (c *BufferCache) WithPair(a, b string, fn func(a, b *raster.Buffer) error) error {
	ea, err := c.entry(a)
	if err != nil {
		return err
	}
	eb, err := c.entry(b)
	if err != nil {
		return err
	}

	if ea == eb {
		ea.mu.Lock()
		defer ea.mu.Unlock()
		if ea.dead {
			return fmt.Errorf("no buffer named %q", a)
		}
		return fn(ea.buf, ea.buf)
	}

	first, second := ea, eb
	if b < a {
		first, second = eb, ea
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()
	if ea.dead {
		return fmt.Errorf("no buffer named %q", a)
	}
	if eb.dead {
		return fmt.Errorf("no buffer named %q", b)
	}
	return fn(ea.buf, eb.buf)
}

// Names returns the cached buffer names in sorted order.
func (c *BufferCache) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.buffers))
	for name := range c.buffers {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Evict removes the named buffer. Unknown names are ignored.
func (c *BufferCache) Evict(name string) {
	c.mu.Lock()
	delete(c.buffers, name)
	c.mu.Unlock()
}

// Clear removes every buffer.
func (c *BufferCache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// LoadFile decodes the PNG at path into the named buffer.
//
// An existing buffer is loaded in place, so its signal metadata survives and
// a failed load leaves it untouched. Otherwise a new entry is reserved under
// name and removed again if loading fails. Concurrent loads of one name run
// one after another on the same entry.
func (c *BufferCache) LoadFile(name, path string) (*BufferInfo, error) {
	return c.load(name, func(b *raster.Buffer) error { return b.Load(path) })
}

// LoadBytes is LoadFile for in-memory PNG data.
func (c *BufferCache) LoadBytes(name string, data []byte) (*BufferInfo, error) {
	return c.load(name, func(b *raster.Buffer) error { return b.LoadBytes(data) })
}

func (c *BufferCache) load(name string, fn func(*raster.Buffer) error) (*BufferInfo, error) {
	for {
		e, created := c.acquire(name)
		if e == nil {
			// The entry we waited for was a failed first load; start over.
			continue
		}
		return c.loadInto(name, e, created, fn)
	}
}

// acquire returns the named entry locked, creating it when absent. The map
// lock is never held while waiting for an entry lock. A nil entry means the
// existing one died while we waited.
func (c *BufferCache) acquire(name string) (*cacheEntry, bool) {
	c.mu.Lock()
	e, ok := c.buffers[name]
	if !ok {
		e = &cacheEntry{buf: raster.New()}
		e.mu.Lock()
		c.buffers[name] = e
		c.mu.Unlock()
		return e, true
	}
	c.mu.Unlock()

	e.mu.Lock()
	if e.dead {
		e.mu.Unlock()
		return nil, false
	}
	return e, false
}

// loadInto runs fn on the locked entry e and unlocks it. A failed first
// load removes the entry again.
func (c *BufferCache) loadInto(name string, e *cacheEntry, created bool, fn func(*raster.Buffer) error) (*BufferInfo, error) {
	var info *BufferInfo
	err := func() error {
		defer e.mu.Unlock()
		if err := fn(e.buf); err != nil {
			e.dead = created
			return err
		}
		info = Info(e.buf)
		return nil
	}()
	if err == nil {
		return info, nil
	}
	if created {
		c.mu.Lock()
		if c.buffers[name] == e {
			delete(c.buffers, name)
		}
		c.mu.Unlock()
	}
	return nil, err
}

// BufferInfo describes a raster buffer without its pixel data.
type BufferInfo struct {
	// Width is the buffer width in pixels.
	Width int `json:"width"`

	// Height is the buffer height in pixels.
	Height int `json:"height"`

	// Format is "luminance", "rgb" or "rgba".
	Format string `json:"format"`

	// BytesPerPixel is 1, 3 or 4 depending on Format.
	BytesPerPixel int `json:"bytes_per_pixel"`

	// BytesPerRow is the unpadded row stride.
	BytesPerRow int `json:"bytes_per_row"`

	// ByteLength is BytesPerRow * Height.
	ByteLength int `json:"byte_length"`

	// Signal is the playback metadata carried with the frame.
	Signal raster.Signal `json:"signal"`
}

// Info returns the metadata of buf.
func Info(buf *raster.Buffer) *BufferInfo {
	return &BufferInfo{
		Width:         buf.Width(),
		Height:        buf.Height(),
		Format:        buf.Format().String(),
		BytesPerPixel: buf.BytesPerPixel(),
		BytesPerRow:   buf.BytesPerRow(),
		ByteLength:    len(buf.Pix()),
		Signal:        buf.Signal(),
	}
}

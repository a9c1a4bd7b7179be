package assets

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/zeusync/blueprint/internal/core/observability/log"
	"github.com/zeusync/blueprint/pkg/concurrent"
)

// DefaultExtension is appended to blueprint names to form asset file names.
const DefaultExtension = ".bin"

// Asset is an immutable blob of raw blueprint bytes.
type Asset struct {
	name string
	data []byte
}

func NewAsset(name string, data []byte) *Asset {
	return &Asset{name: name, data: data}
}

func (a *Asset) Name() string { return a.name }
func (a *Asset) Data() []byte { return a.data }
func (a *Asset) Size() int    { return len(a.data) }

// Cache resolves blueprint names to raw bytes and keeps what it loaded.
// It is safe for concurrent use; concurrent loads of one name share a single
// read from the Source.
type Cache struct {
	source    Source
	extension string
	log       log.Log

	mu     sync.RWMutex
	assets map[string]*Asset
	group  singleflight.Group
}

type Option func(*Cache)

// WithExtension overrides DefaultExtension. An empty extension is allowed.
func WithExtension(ext string) Option {
	return func(c *Cache) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.extension = ext
	}
}

func WithLogger(l log.Log) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCache returns a cache reading from source. A nil source leaves the
// cache serving only what is added with Put.
func NewCache(source Source, opts ...Option) *Cache {
	c := &Cache{
		source:    source,
		extension: DefaultExtension,
		log:       log.NewNop(),
		assets:    make(map[string]*Asset),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FileName returns the asset file name for a blueprint name.
func (c *Cache) FileName(name string) string {
	return name + c.extension
}

// Get returns a cached asset without touching the Source.
func (c *Cache) Get(name string) (*Asset, bool) {
	c.mu.RLock()
	a, ok := c.assets[name]
	c.mu.RUnlock()
	return a, ok
}

// Put stores data under name, replacing any cached asset.
func (c *Cache) Put(name string, data []byte) *Asset {
	a := NewAsset(name, data)
	c.mu.Lock()
	c.assets[name] = a
	c.mu.Unlock()
	return a
}

// Release drops name from the cache.
func (c *Cache) Release(name string) {
	c.mu.Lock()
	delete(c.assets, name)
	c.mu.Unlock()
}

// Len returns the number of cached assets.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.assets)
}

// Load returns the asset for name, reading name+extension from the Source
// on a miss.
func (c *Cache) Load(name string) (*Asset, error) {
	if a, ok := c.Get(name); ok {
		return a, nil
	}
	if c.source == nil {
		return nil, ErrNoSource
	}

	v, err, shared := c.group.Do(name, func() (any, error) {
		if a, ok := c.Get(name); ok {
			return a, nil
		}
		data, err := c.source.ReadFile(c.FileName(name))
		if err != nil {
			return nil, err
		}
		c.log.Debug("blueprint asset loaded",
			log.String("name", name),
			log.Int("size", len(data)),
		)
		return c.Put(name, data), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.log.Debug("blueprint asset load shared", log.String("name", name))
	}
	return v.(*Asset), nil
}

// Preload loads names in parallel with at most workers concurrent reads.
func (c *Cache) Preload(ctx context.Context, workers int, names ...string) error {
	return concurrent.ForEach(ctx, names, workers, func(_ context.Context, name string) error {
		_, err := c.Load(name)
		return err
	})
}

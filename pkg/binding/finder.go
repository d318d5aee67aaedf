package binding

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/lintwatch/notify-go/pkg/notification"
)

// Finder resolves projects by name from a bindings File.
// Projects without a binding resolve to "" (not bound).
type Finder struct {
	byProject map[string]Binding
}

// NewFinder creates a Finder over f.
func NewFinder(f *File) *Finder {
	byProject := make(map[string]Binding, len(f.Bindings))
	for _, b := range f.Bindings {
		byProject[b.Project] = b
	}
	return &Finder{byProject: byProject}
}

// ProjectKey returns the remote project key bound to p.
func (f *Finder) ProjectKey(p notification.Project) string {
	return f.byProject[p.Name()].ProjectKey
}

// ModuleKey returns the module key bound to p.
func (f *Finder) ModuleKey(p notification.Project) string {
	return f.byProject[p.Name()].ModuleKey
}

// Lookup returns the binding for a project name.
func (f *Finder) Lookup(name string) (Binding, bool) {
	b, ok := f.byProject[name]
	return b, ok
}

// Projects returns the number of bound projects.
func (f *Finder) Projects() int {
	return len(f.byProject)
}

// Bindings returns all bindings sorted by project name.
func (f *Finder) Bindings() []Binding {
	out := make([]Binding, 0, len(f.byProject))
	for _, b := range f.byProject {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Project < out[j].Project })
	return out
}

// CacheSettings configures a CachingFinder.
type CacheSettings struct {
	// Size is the maximum number of cached projects.
	Size int

	// TTL is how long a lookup stays cached. Zero disables expiry.
	TTL time.Duration
}

// DefaultCacheSettings returns settings suitable for a workspace of a few
// hundred projects.
func DefaultCacheSettings() CacheSettings {
	return CacheSettings{
		Size: 512,
		TTL:  10 * time.Minute,
	}
}

type keys struct {
	projectKey string
	moduleKey  string
}

// CachingFinder caches the keys resolved by another finder, by project name.
type CachingFinder struct {
	next  notification.ModuleInfoFinder
	cache *expirable.LRU[string, keys]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCachingFinder wraps next with an expiring LRU cache.
func NewCachingFinder(next notification.ModuleInfoFinder, settings CacheSettings) *CachingFinder {
	if settings.Size <= 0 {
		settings.Size = DefaultCacheSettings().Size
	}
	// golang-lru panics on expiry buckets when ttl/100 rounds to zero.
	if settings.TTL > 0 && settings.TTL < 100*time.Nanosecond {
		settings.TTL = 100 * time.Nanosecond
	}
	return &CachingFinder{
		next:  next,
		cache: expirable.NewLRU[string, keys](settings.Size, nil, settings.TTL),
	}
}

// ProjectKey returns the cached remote project key for p.
func (c *CachingFinder) ProjectKey(p notification.Project) string {
	return c.resolve(p).projectKey
}

// ModuleKey returns the cached module key for p.
func (c *CachingFinder) ModuleKey(p notification.Project) string {
	return c.resolve(p).moduleKey
}

// Purge drops all cached lookups.
func (c *CachingFinder) Purge() {
	c.cache.Purge()
}

// Stats returns cache hit and miss counts.
func (c *CachingFinder) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *CachingFinder) resolve(p notification.Project) keys {
	name := p.Name()
	if k, ok := c.cache.Get(name); ok {
		c.hits.Add(1)
		return k
	}
	c.misses.Add(1)

	k := keys{
		projectKey: c.next.ProjectKey(p),
		moduleKey:  c.next.ModuleKey(p),
	}
	c.cache.Add(name, k)
	return k
}

// Compile-time interface satisfaction checks.
var (
	_ notification.ModuleInfoFinder = (*Finder)(nil)
	_ notification.ModuleInfoFinder = (*CachingFinder)(nil)
)

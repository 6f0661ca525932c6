package registry

import (
	"reflect"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/oasbridge/schemareg/schema"
)

// schemaKey identifies one cache entry: a type identity plus an optional
// parameter identity. The parameter component is empty for property-backed
// and context-free requests, collapsing the key to type identity alone.
type schemaKey struct {
	typ   reflect.Type
	param string
}

// flightKey returns a string form of the key for single-flight grouping.
// The type's runtime pointer is unique per type, unlike its String() form.
func (k schemaKey) flightKey() string {
	return strconv.FormatUint(uint64(reflect.ValueOf(k.typ).Pointer()), 16) + "|" + k.param
}

// schemaCache is the concurrent, append-only mapping from schema keys to
// generated schemas. Population is single-flight per key: generation hooks
// are pluggable and cannot be assumed side-effect free, so at most one
// generation executes per key even under racing callers. Entries are never
// evicted or replaced.
type schemaCache struct {
	mu      sync.RWMutex
	entries map[schemaKey]*schema.Schema
	flight  singleflight.Group
}

func newSchemaCache() *schemaCache {
	return &schemaCache{entries: make(map[schemaKey]*schema.Schema)}
}

// get returns the cached schema for key, or nil.
func (c *schemaCache) get(key schemaKey) *schema.Schema {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[key]
}

// put installs a schema for key without generation. Used for pre-seeding.
func (c *schemaCache) put(key schemaKey, s *schema.Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = s
}

// getOrCreate returns the schema for key, invoking generate on a miss.
// Racing callers for the same key share a single generate invocation and all
// observe the same published value. generate must never return nil.
func (c *schemaCache) getOrCreate(key schemaKey, generate func() *schema.Schema) *schema.Schema {
	if s := c.get(key); s != nil {
		return s
	}

	v, _, _ := c.flight.Do(key.flightKey(), func() (any, error) {
		// Double-check under the flight: another caller may have published
		// between our miss and acquiring the flight slot.
		if s := c.get(key); s != nil {
			return s, nil
		}

		s := generate()
		if s == nil {
			s = &schema.Schema{}
		}

		c.mu.Lock()
		c.entries[key] = s
		c.mu.Unlock()
		return s, nil
	})

	return v.(*schema.Schema)
}

// len reports the number of cached entries.
func (c *schemaCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

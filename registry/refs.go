package registry

import (
	"sync"

	"github.com/oasbridge/schemareg/schema"
)

// refRegistry maps schema names to their materialized schemas for
// document-level $ref resolution. It only grows or overwrites: addOrUpdate is
// unconditional last-write-wins, acceptable because generation is
// deterministic per type, and no removal operation exists.
type refRegistry struct {
	mu     sync.RWMutex
	byName map[string]*schema.Schema
}

func newRefRegistry() *refRegistry {
	return &refRegistry{byName: make(map[string]*schema.Schema)}
}

// addOrUpdate installs or replaces the entry for name.
func (r *refRegistry) addOrUpdate(name string, s *schema.Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[name] = s
}

// snapshot returns a copy of the current name→schema mapping. The map is the
// caller's to keep; the schema values remain shared and read-only.
func (r *refRegistry) snapshot() map[string]*schema.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*schema.Schema, len(r.byName))
	for name, s := range r.byName {
		out[name] = s
	}
	return out
}

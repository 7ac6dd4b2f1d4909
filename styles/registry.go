package styles

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

// Registry is a style table shared between cooperating components.
// Components never reach it implicitly: a caller that wants coordination
// passes a *Registry through the component configuration. Each key (usually
// a component instance name) holds CSS property/value pairs; the last write wins.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]map[string]string)}
}

// Set stores property=value under key.
func (r *Registry) Set(key, property, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	props, ok := r.rules[key]
	if !ok {
		props = make(map[string]string)
		r.rules[key] = props
	}
	props[property] = value
}

// Replace swaps every property of key for props in one step, so readers
// never see a mix of the old and new sets. Empty props drops the key.
func (r *Registry) Replace(key string, props map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(props) == 0 {
		delete(r.rules, key)
		return
	}
	r.rules[key] = maps.Clone(props)
}

// Delete removes a property from key. Removing the last property drops the key.
func (r *Registry) Delete(key, property string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	props, ok := r.rules[key]
	if !ok {
		return
	}
	delete(props, property)
	if len(props) == 0 {
		delete(r.rules, key)
	}
}

// Get returns the value stored for key and property.
func (r *Registry) Get(key, property string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.rules[key][property]
	return v, ok
}

// Rules returns a copy of the properties stored under key.
func (r *Registry) Rules(key string) map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.rules[key])
}

// Inline renders the properties for key as an inline style attribute value,
// sorted by property name so the output is stable.
func (r *Registry) Inline(key string) string {
	return Declarations(r.Rules(key))
}

// CSS renders every key as a class rule, e.g. `.navbar { position: fixed; top: 0; }`.
func (r *Registry) CSS() string {
	r.mu.RLock()
	keys := slices.Sorted(maps.Keys(r.rules))
	snapshot := make(map[string]map[string]string, len(keys))
	for _, k := range keys {
		snapshot[k] = maps.Clone(r.rules[k])
	}
	r.mu.RUnlock()

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString("." + k + " { ")
		sb.WriteString(strings.ReplaceAll(Declarations(snapshot[k]), ";", "; "))
		sb.WriteString("}\n")
	}
	return sb.String()
}

// Declarations renders CSS properties as "prop:value;" pairs sorted by property.
func Declarations(props map[string]string) string {
	var sb strings.Builder
	for _, p := range slices.Sorted(maps.Keys(props)) {
		sb.WriteString(p + ":" + props[p] + ";")
	}
	return sb.String()
}

package extensions

import (
	"encoding/json"
	"fmt"
	"sort"
)

var registry = make(map[string]Extension)

// Register adds an extension to the global registry.
func Register(ext Extension) {
	registry[ext.Info().ID] = ext
}

// Get returns a registered extension by id.
func Get(id string) (Extension, bool) {
	ext, ok := registry[id]
	return ext, ok
}

// IsExtension returns true if id names a registered extension.
func IsExtension(id string) bool {
	_, ok := registry[id]
	return ok
}

// Names returns sorted ids of all registered extensions.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupHandler resolves an extension's opcode to its handler.
func LookupHandler(id, opcode string) (Handler, bool) {
	ext, ok := registry[id]
	if !ok {
		return nil, false
	}
	h, ok := ext.Handlers()[opcode]
	return h, ok
}

// Dispatch runs one block invocation. An unknown extension or opcode is
// the only failure; handlers themselves never fail.
func Dispatch(id, opcode string, args Arguments, target Target) (any, error) {
	h, ok := LookupHandler(id, opcode)
	if !ok {
		return nil, fmt.Errorf("extensions: no handler for %s.%s", id, opcode)
	}
	return h(args, target), nil
}

// ExportJSON renders an extension's metadata as the indented JSON document
// the host consumes. Map keys serialize sorted, so the output is stable.
func ExportJSON(id string) ([]byte, error) {
	ext, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("extensions: unknown extension %q", id)
	}
	return json.MarshalIndent(ext.Info(), "", "  ")
}

package argh

import "strings"

// Registry holds the registered parameters, indexed by short key and by
// long name. Both indexes refer to the same Param for a given
// registration; a slice preserves registration order for stable help and
// usage rendering.
type Registry struct {
	byKey   map[byte]Param
	byName  map[string]Param
	ordered []Param
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:  make(map[byte]Param),
		byName: make(map[string]Param),
	}
}

// validKey reports whether b can serve as a short key. Keys must be
// printable ASCII and must not collide with the option syntax itself.
func validKey(b byte) bool {
	return b > 0x20 && b < 0x7f && b != '-' && b != '='
}

// validName reports whether name can serve as a long name. Names must be
// non-empty, must not start with '-', and must not contain '=' or
// whitespace.
func validName(name string) bool {
	if name == "" || name[0] == '-' {
		return false
	}
	return !strings.ContainsAny(name, "= \t")
}

// Register adds p to both indexes. A registration that collides with an
// existing key or name is rejected outright, so an earlier registration
// can never lose its dispatch slot.
func (r *Registry) Register(p Param) error {
	if !validKey(p.Key()) {
		return registerErrorf(ErrorTypeInvalidKey,
			"invalid key %q: keys must be printable and must not be '-' or '='", p.Key())
	}
	if !validName(p.Name()) {
		return registerErrorf(ErrorTypeInvalidName,
			"invalid name %q: names must be non-empty and free of '=', '-' prefix and whitespace", p.Name())
	}
	if prev, ok := r.byKey[p.Key()]; ok {
		return registerErrorf(ErrorTypeDuplicateKey,
			"key '%c' already registered to --%s", p.Key(), prev.Name())
	}
	if _, ok := r.byName[p.Name()]; ok {
		return registerErrorf(ErrorTypeDuplicateName,
			"name --%s already registered", p.Name())
	}

	r.byKey[p.Key()] = p
	r.byName[p.Name()] = p
	r.ordered = append(r.ordered, p)
	return nil
}

// LookupKey resolves a short key.
func (r *Registry) LookupKey(key byte) (Param, bool) {
	p, ok := r.byKey[key]
	return p, ok
}

// LookupName resolves a long name.
func (r *Registry) LookupName(name string) (Param, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Params returns the registered parameters in registration order. The
// returned slice is shared; callers must not modify it.
func (r *Registry) Params() []Param {
	return r.ordered
}

// Names returns the registered long names in registration order, used as
// suggestion candidates by the error handler.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ordered))
	for _, p := range r.ordered {
		names = append(names, p.Name())
	}
	return names
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return len(r.ordered)
}

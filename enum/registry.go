package enum

import (
	"reflect"
	"sync"
)

// Registry represents concurrent safe enumeration registry keyed by go type
type Registry struct {
	types sync.Map
}

// Register registers enumerations
func (r *Registry) Register(types ...*Type) {
	for _, t := range types {
		r.types.Store(t.rType, t)
	}
}

// Lookup returns enumeration registered for rType
func (r *Registry) Lookup(rType reflect.Type) (*Type, bool) {
	if r == nil || rType == nil {
		return nil, false
	}
	value, ok := r.types.Load(rType)
	if !ok {
		return nil, false
	}
	return value.(*Type), true
}

// NewRegistry creates a registry
func NewRegistry(types ...*Type) *Registry {
	ret := &Registry{}
	ret.Register(types...)
	return ret
}

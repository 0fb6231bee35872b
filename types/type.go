package types

import (
	"github.com/lingproj/metatype/meta"
)

// typ is the one implementation of meta.Type. The parent and capability
// references form the widening graph that distances are computed on. A compact
// type, such as int, carries a reference to its wide form and borrows its place
// in the graph
type typ struct {
	name         string
	parent       meta.Type
	capabilities []meta.Type
	paired       meta.Type
	compact      bool
	key          meta.HashKey
}

func newType(name string, parent meta.Type, capabilities ...meta.Type) meta.Type {
	return &typ{name: name, parent: parent, capabilities: capabilities, key: meta.HashKey("\x00t" + name)}
}

func (t *typ) Name() string {
	return t.name
}

func (t *typ) Parent() meta.Type {
	return t.parent
}

func (t *typ) Capabilities() []meta.Type {
	return t.capabilities
}

func (t *typ) Paired() meta.Type {
	return t.paired
}

func (t *typ) ToKey() meta.HashKey {
	return t.key
}

func (t *typ) Equals(other interface{}, g meta.Guard) bool {
	ot, ok := other.(*typ)
	return ok && t == ot
}

func (t *typ) String() string {
	return t.name
}

// canon returns the node that represents the given type in the widening graph.
// For a compact type that is its paired wide form, for all others the type
// itself
func canon(t meta.Type) meta.Type {
	if tt, ok := t.(*typ); ok && tt.compact && tt.paired != nil {
		return tt.paired
	}
	return t
}

package meta

import "reflect"

type (
	visit struct {
		a1 interface{}
		a2 interface{}
	}

	// Guard helps tracking endless recursion. The comparison algorithm assumes that all checks in progress
	// are true when it reencounters them. Visited comparisons are stored in a map
	// indexed by visit.
	//
	// (algorithm copied from golang reflect/deepequal.go)
	Guard map[visit]bool

	Equality interface {
		Equals(other interface{}, guard Guard) bool
	}
)

func (g Guard) Seen(a, b interface{}) bool {
	v := visit{a, b}
	if _, ok := g[v]; ok {
		return true
	}
	g[v] = true
	return false
}

func Equals(a interface{}, b interface{}) bool {
	return GuardedEquals(a, b, nil)
}

func GuardedEquals(a interface{}, b interface{}, g Guard) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Equality:
		return a.Equals(b, g)
	case string:
		bs, ok := b.(string)
		return ok && a == bs
	default:
		return reflect.DeepEqual(a, b)
	}
}

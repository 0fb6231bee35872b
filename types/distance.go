package types

import (
	"github.com/lingproj/metatype/meta"
)

// Distance returns the number of widening steps from actual up to target. Results
// are memoized per catalog. The memo is dropped whenever a definition is added,
// in this catalog or in a parent, since new types or pairings can open shorter
// paths
func (c *basicCatalog) Distance(target, actual meta.Type) (int, bool) {
	if target == nil || actual == nil {
		return 0, false
	}
	c.syncMemos()
	t := canon(target)
	a := canon(actual)
	k := meta.HashKey(string(t.ToKey()) + string(a.ToKey()))

	c.lock.RLock()
	d, ok := c.distances[k]
	c.lock.RUnlock()
	if !ok {
		if dist, found := distance(t, a, make(map[meta.Type]int, 8)); found {
			d = dist
		} else {
			d = -1
		}
		c.lock.Lock()
		if c.distances == nil {
			c.distances = make(map[meta.HashKey]int, 32)
		}
		c.distances[k] = d
		c.lock.Unlock()
	}
	if d < 0 {
		return 0, false
	}
	return d, true
}

// distance returns the length of the shortest path of parent and capability
// references from a up to t. The seen map holds the result for each node that has
// been walked, with -1 for nodes that have no path. A node that is reentered
// while its own walk is in progress reads as having no path, which makes the
// walk terminate on a graph with cycles
func distance(t, a meta.Type, seen map[meta.Type]int) (int, bool) {
	a = canon(a)
	if a == t {
		return 0, true
	}
	if d, ok := seen[a]; ok {
		if d < 0 {
			return 0, false
		}
		return d, true
	}
	seen[a] = -1
	best := -1
	if p := a.Parent(); p != nil {
		if d, ok := distance(t, p, seen); ok {
			best = d + 1
		}
	}
	for _, cp := range a.Capabilities() {
		if d, ok := distance(t, cp, seen); ok && (best < 0 || d+1 < best) {
			best = d + 1
		}
	}
	seen[a] = best
	if best < 0 {
		return 0, false
	}
	return best, true
}

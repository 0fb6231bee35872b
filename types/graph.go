package types

import (
	"sort"
	"sync"

	"github.com/lingproj/metatype/meta"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

type (
	// TypeGraph is a directed view of the widening graph of a catalog. Edges
	// extend from a type to the types that accept its instances after one
	// widening step, so its parent and its capabilities. A compact type shares
	// the node of its wide form
	TypeGraph interface {
		graph.Directed

		// NodeFor returns the node that represents the given type, or nil when
		// the graph does not contain the type
		NodeFor(t meta.Type) graph.Node

		// TypeAt returns the type represented by the node with the given id, or
		// nil
		TypeAt(id int64) meta.Type

		// Widenings returns the types that the given type widens to in one step,
		// in definition order
		Widenings(t meta.Type) []meta.Type

		// Narrowings returns the types that widen to the given type in one step,
		// in definition order
		Narrowings(t meta.Type) []meta.Type
	}

	// TypeNode is a graph node that carries the catalog type it represents
	TypeNode struct {
		id int64
		t  meta.Type
	}

	typeGraph struct {
		lock  sync.RWMutex
		g     *simple.DirectedGraph
		nodes map[meta.Type]*TypeNode
	}
)

func (n *TypeNode) ID() int64 {
	return n.id
}

// Type returns the catalog type of this node
func (n *TypeNode) Type() meta.Type {
	return n.t
}

func (n *TypeNode) String() string {
	return n.t.Name()
}

// GraphOf exports the widening graph of every type that the given catalog and
// its parents define. The export is a snapshot, definitions added to the
// catalog afterwards are not reflected. Node ids follow definition order
func GraphOf(c meta.Catalog) TypeGraph {
	tg := &typeGraph{g: simple.NewDirectedGraph(), nodes: make(map[meta.Type]*TypeNode, 32)}
	c.EachType(func(t meta.Type) {
		tg.add(canon(t))
	})
	c.EachType(func(t meta.Type) {
		t = canon(t)
		from := tg.nodes[t]
		if p := t.Parent(); p != nil {
			tg.connect(from, canon(p))
		}
		for _, cp := range t.Capabilities() {
			tg.connect(from, canon(cp))
		}
	})
	return tg
}

// Hierarchy returns the types of the catalog ordered so that a type always
// comes before the types it widens to. An error is returned when the widening
// graph contains a cycle
func Hierarchy(c meta.Catalog) ([]meta.Type, error) {
	sorted, err := topo.Sort(GraphOf(c))
	if err != nil {
		return nil, err
	}
	return typesOf(sorted), nil
}

func (tg *typeGraph) add(t meta.Type) *TypeNode {
	if n, ok := tg.nodes[t]; ok {
		return n
	}
	n := &TypeNode{id: tg.g.NewNode().ID(), t: t}
	tg.g.AddNode(n)
	tg.nodes[t] = n
	return n
}

func (tg *typeGraph) connect(from *TypeNode, to meta.Type) {
	tn := tg.add(to)
	if from.id != tn.id {
		tg.g.SetEdge(tg.g.NewEdge(from, tn))
	}
}

func (tg *typeGraph) NodeFor(t meta.Type) graph.Node {
	tg.lock.RLock()
	n, ok := tg.nodes[canon(t)]
	tg.lock.RUnlock()
	if !ok {
		return nil
	}
	return n
}

func (tg *typeGraph) TypeAt(id int64) meta.Type {
	tg.lock.RLock()
	n := tg.g.Node(id)
	tg.lock.RUnlock()
	if tn, ok := n.(*TypeNode); ok {
		return tn.t
	}
	return nil
}

func (tg *typeGraph) Widenings(t meta.Type) []meta.Type {
	if n := tg.NodeFor(t); n != nil {
		return typesOf(graph.NodesOf(tg.From(n.ID())))
	}
	return nil
}

func (tg *typeGraph) Narrowings(t meta.Type) []meta.Type {
	if n := tg.NodeFor(t); n != nil {
		return typesOf(graph.NodesOf(tg.To(n.ID())))
	}
	return nil
}

func (tg *typeGraph) Node(id int64) graph.Node {
	tg.lock.RLock()
	n := tg.g.Node(id)
	tg.lock.RUnlock()
	return n
}

func (tg *typeGraph) Nodes() graph.Nodes {
	tg.lock.RLock()
	ns := graph.NodesOf(tg.g.Nodes())
	tg.lock.RUnlock()
	return orderedNodes(ns)
}

func (tg *typeGraph) From(id int64) graph.Nodes {
	tg.lock.RLock()
	ns := graph.NodesOf(tg.g.From(id))
	tg.lock.RUnlock()
	return orderedNodes(ns)
}

func (tg *typeGraph) To(id int64) graph.Nodes {
	tg.lock.RLock()
	ns := graph.NodesOf(tg.g.To(id))
	tg.lock.RUnlock()
	return orderedNodes(ns)
}

func (tg *typeGraph) HasEdgeBetween(xid, yid int64) bool {
	tg.lock.RLock()
	result := tg.g.HasEdgeBetween(xid, yid)
	tg.lock.RUnlock()
	return result
}

func (tg *typeGraph) HasEdgeFromTo(uid, vid int64) bool {
	tg.lock.RLock()
	result := tg.g.HasEdgeFromTo(uid, vid)
	tg.lock.RUnlock()
	return result
}

func (tg *typeGraph) Edge(uid, vid int64) graph.Edge {
	tg.lock.RLock()
	result := tg.g.Edge(uid, vid)
	tg.lock.RUnlock()
	return result
}

func orderedNodes(ns []graph.Node) graph.Nodes {
	sort.Slice(ns, func(i, j int) bool { return ns[i].ID() < ns[j].ID() })
	return iterator.NewOrderedNodes(ns)
}

func typesOf(ns []graph.Node) []meta.Type {
	ts := make([]meta.Type, len(ns))
	for i, n := range ns {
		ts[i] = n.(*TypeNode).t
	}
	return ts
}

package types

import (
	"reflect"
	"sync"

	"github.com/lingproj/metatype/hash"
	"github.com/lingproj/metatype/meta"
	"github.com/lyraproj/issue/issue"
)

// basicCatalog is the one implementation of meta.Catalog. Catalogs form chains
// through the parent reference. Lookups that miss are delegated to the parent
// while definitions always land in the catalog that received them
type basicCatalog struct {
	lock      sync.RWMutex
	parent    meta.Catalog
	types     *hash.StringHash
	ctors     map[meta.HashKey][]meta.Constructor
	impls     map[reflect.Type]meta.Type
	gen       uint64
	memoGen   uint64
	distances map[meta.HashKey]int
	factories map[meta.HashKey]meta.Factory
	frozen    bool
}

func bareCatalog(parent meta.Catalog) *basicCatalog {
	return &basicCatalog{
		parent:    parent,
		types:     hash.NewStringHash(32),
		ctors:     make(map[meta.HashKey][]meta.Constructor, 16),
		impls:     make(map[reflect.Type]meta.Type, 16),
		factories: make(map[meta.HashKey]meta.Factory, 16),
	}
}

func newCatalog(parent meta.Catalog) meta.DefiningCatalog {
	if parent == nil {
		parent = staticCatalog
	}
	return bareCatalog(parent)
}

func (c *basicCatalog) Parent() meta.Catalog {
	return c.parent
}

// invalidate drops the distance and factory memos and advances the definition
// generation so that children of this catalog drop theirs as well. The caller
// must hold the write lock
func (c *basicCatalog) invalidate() {
	c.gen++
	c.distances = nil
	c.factories = nil
}

// chainGen returns the number of definitions that this catalog and its parents
// have received. A memo filled at an older generation can be stale
func (c *basicCatalog) chainGen() uint64 {
	c.lock.RLock()
	g := c.gen
	c.lock.RUnlock()
	if p, ok := c.parent.(*basicCatalog); ok {
		g += p.chainGen()
	}
	return g
}

// syncMemos drops the memos when a definition was added to this catalog or to
// one of its parents after they were filled
func (c *basicCatalog) syncMemos() {
	g := c.chainGen()
	c.lock.Lock()
	if c.memoGen != g {
		c.memoGen = g
		c.distances = nil
		c.factories = nil
	}
	c.lock.Unlock()
}

func (c *basicCatalog) Get(name string) (meta.Type, bool) {
	c.lock.RLock()
	t, ok := c.types.Get3(name)
	c.lock.RUnlock()
	if ok {
		return t.(meta.Type), true
	}
	if c.parent != nil {
		return c.parent.Get(name)
	}
	return nil, false
}

func (c *basicCatalog) Resolve(name string) meta.Type {
	if t, ok := c.Get(name); ok {
		return t
	}
	panic(meta.Error(meta.TypeNotFound, issue.H{`name`: name}))
}

func (c *basicCatalog) DefineType(t meta.Type) meta.Type {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.frozen {
		panic(meta.Error(meta.FrozenCatalog, issue.H{`name`: t.Name()}))
	}
	if c.types.Includes(t.Name()) {
		panic(meta.Error(meta.DuplicateType, issue.H{`name`: t.Name()}))
	}
	c.types.Put(t.Name(), t)
	c.invalidate()
	return t
}

func (c *basicCatalog) DefinePair(a, b meta.Type) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.frozen {
		panic(meta.Error(meta.FrozenCatalog, issue.H{`name`: a.Name()}))
	}
	at := a.(*typ)
	bt := b.(*typ)
	if at.paired != nil && at.paired != b {
		panic(meta.Error(meta.DuplicatePair, issue.H{`name`: at.name, `pair`: at.paired.Name()}))
	}
	if bt.paired != nil && bt.paired != a {
		panic(meta.Error(meta.DuplicatePair, issue.H{`name`: bt.name, `pair`: bt.paired.Name()}))
	}
	at.paired = b
	bt.paired = a
	at.compact = true
	c.invalidate()
}

func (c *basicCatalog) DefineConstructor(receiver meta.Type, parameters []meta.Type, restricted bool, creator meta.Creator) meta.Constructor {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.frozen {
		panic(meta.Error(meta.FrozenCatalog, issue.H{`name`: receiver.Name()}))
	}
	k := receiver.ToKey()
	for _, e := range c.ctors[k] {
		if sameParameters(e.Parameters(), parameters) {
			panic(meta.Error(meta.DuplicateCtor, issue.H{`type`: receiver.Name(), `signature`: signatureString(parameters)}))
		}
	}
	ct := newCtor(receiver, parameters, restricted, creator)
	c.ctors[k] = append(c.ctors[k], ct)
	c.invalidate()
	return ct
}

func (c *basicCatalog) DefineImplementation(rt reflect.Type, t meta.Type) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.frozen {
		panic(meta.Error(meta.FrozenCatalog, issue.H{`name`: t.Name()}))
	}
	c.impls[rt] = t
}

// Constructors returns the constructors for t across the whole catalog chain.
// Constructors defined in a parent appear before those defined here
func (c *basicCatalog) Constructors(t meta.Type) []meta.Constructor {
	var inherited []meta.Constructor
	if c.parent != nil {
		inherited = c.parent.Constructors(t)
	}
	c.lock.RLock()
	own := c.ctors[t.ToKey()]
	result := make([]meta.Constructor, 0, len(inherited)+len(own))
	result = append(result, inherited...)
	result = append(result, own...)
	c.lock.RUnlock()
	return result
}

func (c *basicCatalog) TypeOf(value interface{}) (meta.Type, bool) {
	if value == nil {
		return nil, false
	}
	if tv, ok := value.(meta.Typed); ok {
		return tv.MetaType(), true
	}
	rt := reflect.TypeOf(value)
	for {
		c.lock.RLock()
		t, ok := c.impls[rt]
		c.lock.RUnlock()
		if ok {
			return t, true
		}
		if rt.Kind() == reflect.Ptr {
			rt = rt.Elem()
			continue
		}
		break
	}
	if c.parent != nil {
		return c.parent.TypeOf(value)
	}
	return nil, false
}

func (c *basicCatalog) EachType(v meta.Visitor) {
	if c.parent != nil {
		c.parent.EachType(v)
	}
	c.lock.RLock()
	ts := c.types.Values()
	c.lock.RUnlock()
	for _, t := range ts {
		v(t.(meta.Type))
	}
}

func sameParameters(a, b []meta.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i, p := range a {
		if p != b[i] {
			return false
		}
	}
	return true
}

package types

import (
	"fmt"
	"strings"

	"github.com/lingproj/metatype/meta"
	"github.com/lyraproj/issue/issue"
)

// factory is the one implementation of meta.Factory. A factory without a
// constructor resolves one from the actual argument types on every Create. A
// factory that was opened from a signature with a parameter list is locked to the
// constructor that the signature resolved to
type factory struct {
	catalog meta.Catalog
	typ     meta.Type
	ctor    meta.Constructor
	key     meta.HashKey
}

func open(c meta.Catalog, n string) meta.Factory {
	return factoryForType(c, c.Resolve(n))
}

func factoryForType(c meta.Catalog, t meta.Type) meta.Factory {
	k := meta.HashKey("\x00f" + t.Name())
	return cachedFactory(c, k, func() *factory {
		return &factory{catalog: c, typ: t, key: k}
	})
}

func fromSignature(c meta.Catalog, signature string) meta.Factory {
	receiver, params, locked := parseSignature(c, signature)
	if !locked {
		return factoryForType(c, receiver)
	}
	k := meta.HashKey("\x00f" + receiver.Name() + `(` + signatureString(params) + `)`)
	return cachedFactory(c, k, func() *factory {
		ct, ok := resolveCtor(c, receiver, params)
		if !ok {
			panic(meta.Error(meta.CtorNotFound, issue.H{`type`: receiver.Name(), `signature`: signatureString(params)}))
		}
		return &factory{catalog: c, typ: receiver, ctor: ct, key: k}
	})
}

func factoryFor(c meta.Catalog, target interface{}) meta.Factory {
	switch target := target.(type) {
	case meta.Type:
		return factoryForType(c, target)
	case string:
		if strings.ContainsRune(target, '(') {
			return fromSignature(c, target)
		}
		return open(c, target)
	default:
		t, ok := c.TypeOf(target)
		if !ok {
			panic(meta.Error(meta.UnknownValueType, issue.H{`go_type`: fmt.Sprintf(`%T`, target)}))
		}
		return factoryForType(c, t)
	}
}

// cachedFactory returns the factory stored under the given key, or stores and
// returns the one made by the producer. The cache is dropped whenever the
// catalog chain receives a definition, so a cached factory never outlives the
// resolutions it was built from. The cache can be turned off with the
// cache_factories setting
func cachedFactory(c meta.Catalog, k meta.HashKey, producer func() *factory) meta.Factory {
	bc, ok := c.(*basicCatalog)
	if !ok || !meta.Get(`cache_factories`, nil).(bool) {
		return producer()
	}
	bc.syncMemos()
	bc.lock.RLock()
	f := bc.factories[k]
	bc.lock.RUnlock()
	if f != nil {
		return f
	}
	nf := producer()
	bc.lock.Lock()
	if e := bc.factories[k]; e != nil {
		nf = e.(*factory)
	} else {
		if bc.factories == nil {
			bc.factories = make(map[meta.HashKey]meta.Factory, 16)
		}
		bc.factories[k] = nf
	}
	bc.lock.Unlock()
	return nf
}

func (f *factory) Type() meta.Type {
	return f.typ
}

func (f *factory) ToKey() meta.HashKey {
	return f.key
}

func (f *factory) Equals(other interface{}, g meta.Guard) bool {
	of, ok := other.(*factory)
	return ok && f.key == of.key && f.catalog == of.catalog
}

func (f *factory) Create(args ...interface{}) interface{} {
	ct := f.ctor
	if ct == nil {
		argTypes := f.argTypes(args)
		var ok bool
		ct, ok = resolveCtor(f.catalog, f.typ, argTypes)
		if !ok {
			panic(meta.Error(meta.CtorNotFound, issue.H{`type`: f.typ.Name(), `signature`: signatureString(argTypes)}))
		}
	}
	return ct.(*ctor).liftAndCall(args)
}

func (f *factory) CreateAs(target meta.Type, args ...interface{}) interface{} {
	v := f.Create(args...)
	vt, ok := f.catalog.TypeOf(v)
	if !ok {
		panic(meta.Error(meta.UnknownValueType, issue.H{`go_type`: fmt.Sprintf(`%T`, v)}))
	}
	if _, ok = f.catalog.Distance(target, vt); !ok {
		panic(meta.Error(meta.CastError, issue.H{`expected`: target.Name(), `actual`: vt.Name()}))
	}
	return v
}

// Check attempts the creation and discards the instance. Only the failure to
// resolve a constructor is downgraded to false. Everything else that Create
// raises, a failing creator included, resumes out of Check unchanged
func (f *factory) Check(args ...interface{}) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if ri, is := r.(issue.Reported); is && ri.Code() == meta.CtorNotFound {
				ok = false
				return
			}
			panic(r)
		}
	}()
	f.Create(args...)
	return true
}

func (f *factory) argTypes(args []interface{}) []meta.Type {
	ts := make([]meta.Type, len(args))
	for i, a := range args {
		t, ok := f.catalog.TypeOf(a)
		if !ok {
			panic(meta.Error(meta.UnknownValueType, issue.H{`go_type`: fmt.Sprintf(`%T`, a)}))
		}
		ts[i] = t
	}
	return ts
}

func newInstance(c meta.Catalog, n string, args ...interface{}) interface{} {
	return open(c, n).Create(args...)
}

package yaml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/utils"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/semver/semver"
	ym "gopkg.in/yaml.v2"
)

// A Binding provides the creator for the constructor declared at the given
// position in a type graph document. Positions count constructors across the
// whole document in declaration order, starting at zero
type Binding func(receiver meta.Type, parameters []meta.Type, position int) meta.Creator

// LoadableGraphVersions is the range of typegraph document versions that
// LoadGraph understands
var LoadableGraphVersions, _ = semver.ParseVersionRange(`1.x`)

type loader struct {
	c    meta.DefiningCatalog
	bind Binding
	p    []string
	plen int
	pos  int
}

// LoadGraph registers the types and constructors declared by the given document
// in the catalog and returns the document name. Declarations are processed in
// document order, so a parent must be declared before its children and the
// declaration order of constructors decides how ties between equally close
// constructors are broken.
//
// Creator functions cannot be expressed in a document. Instead the given
// Binding is asked for the creator of each declared constructor. LoadGraph
// panics with an issue.Reported when the document cannot be parsed, when its
// typegraph version is outside of LoadableGraphVersions, or when a declaration
// is malformed
func LoadGraph(c meta.DefiningCatalog, content []byte, bind Binding) string {
	ms := make(ym.MapSlice, 0)
	err := ym.Unmarshal(content, &ms)
	if err != nil {
		panic(meta.Error(GraphParseError, issue.H{`detail`: err.Error()}))
	}
	ld := &loader{c: c, bind: bind, p: []string{}}
	return ld.load(ms)
}

func (ld *loader) load(ms ym.MapSlice) string {
	checked := false
	for _, mi := range ms {
		if key, ok := mi.Key.(string); ok && key == `typegraph` {
			ld.checkVersion(mi.Value)
			checked = true
			break
		}
	}
	if !checked {
		panic(meta.Error(GraphNoVersion, issue.NoArgs))
	}

	name := ``
	for _, mi := range ms {
		key := ld.stringKey(mi.Key)
		ld.pushPath(key)
		switch key {
		case `typegraph`:
		case `name`:
			name = ld.stringValue(mi.Value)
		case `types`:
			ld.types(ld.mapValue(mi.Value))
		case `constructors`:
			ld.constructors(ld.mapValue(mi.Value))
		default:
			panic(meta.Error(GraphUnknownKey, issue.H{`key`: key, `path`: ld.path()}))
		}
		ld.popPath()
	}
	return name
}

func (ld *loader) checkVersion(v interface{}) {
	s, ok := v.(string)
	if !ok {
		panic(meta.Error(GraphBadVersion, issue.H{`str`: fmt.Sprintf(`%v`, v), `detail`: `not a string`}))
	}
	ver, err := semver.ParseVersion(s)
	if err != nil {
		panic(meta.Error(GraphBadVersion, issue.H{`str`: s, `detail`: err.Error()}))
	}
	if !LoadableGraphVersions.Includes(ver) {
		panic(meta.Error(GraphVersion, issue.H{`version`: ver, `expected_range`: LoadableGraphVersions}))
	}
}

func (ld *loader) types(ms ym.MapSlice) {
	for _, mi := range ms {
		name := ld.stringKey(mi.Key)
		ld.pushPath(name)
		ld.typeDecl(name, ld.mapValue(mi.Value))
		ld.popPath()
	}
}

// typeDecl registers one declared type. A type without a parent key descends
// from lang.Any unless it is declared to be a capability, which has no implicit
// parent
func (ld *loader) typeDecl(name string, decl ym.MapSlice) {
	if !utils.IsQualified(name) {
		panic(meta.Error(GraphIllegalValue, issue.H{
			`path`: ld.path(), `expected`: `qualified type name`, `actual`: `'` + name + `'`}))
	}
	parent := ``
	parentSet := false
	capability := false
	var caps []meta.Type
	for _, mi := range decl {
		key := ld.stringKey(mi.Key)
		ld.pushPath(key)
		switch key {
		case `parent`:
			parent = ld.stringValue(mi.Value)
			parentSet = true
		case `implements`:
			for i, e := range ld.listValue(mi.Value) {
				ld.pushPath(strconv.Itoa(i))
				caps = append(caps, ld.c.Resolve(ld.stringValue(e)))
				ld.popPath()
			}
		case `capability`:
			capability = ld.boolValue(mi.Value)
		default:
			panic(meta.Error(GraphUnknownKey, issue.H{`key`: key, `path`: ld.path()}))
		}
		ld.popPath()
	}

	var pt meta.Type
	if parentSet {
		pt = ld.c.Resolve(parent)
	} else if !capability {
		pt = ld.c.Resolve(`lang.Any`)
	}
	ld.c.DefineType(meta.NewType(name, pt, caps...))
}

func (ld *loader) constructors(ms ym.MapSlice) {
	for _, mi := range ms {
		name := ld.stringKey(mi.Key)
		ld.pushPath(name)
		t := ld.c.Resolve(name)
		for i, e := range ld.listValue(mi.Value) {
			ld.pushPath(strconv.Itoa(i))
			ld.ctorDecl(t, ld.mapValue(e))
			ld.popPath()
		}
		ld.popPath()
	}
}

func (ld *loader) ctorDecl(t meta.Type, decl ym.MapSlice) {
	var params []meta.Type
	restricted := false
	for _, mi := range decl {
		key := ld.stringKey(mi.Key)
		ld.pushPath(key)
		switch key {
		case `params`:
			ps := ld.listValue(mi.Value)
			params = make([]meta.Type, len(ps))
			for i, e := range ps {
				ld.pushPath(strconv.Itoa(i))
				params[i] = ld.c.Resolve(ld.stringValue(e))
				ld.popPath()
			}
		case `visibility`:
			switch v := ld.stringValue(mi.Value); v {
			case `public`:
				restricted = false
			case `restricted`:
				restricted = true
			default:
				panic(meta.Error(GraphIllegalValue, issue.H{
					`path`: ld.path(), `expected`: `public or restricted visibility`, `actual`: `'` + v + `'`}))
			}
		default:
			panic(meta.Error(GraphUnknownKey, issue.H{`key`: key, `path`: ld.path()}))
		}
		ld.popPath()
	}

	var creator meta.Creator
	if ld.bind != nil {
		creator = ld.bind(t, params, ld.pos)
	}
	if creator == nil {
		ns := make([]string, len(params))
		for i, p := range params {
			ns[i] = p.Name()
		}
		panic(meta.Error(GraphUnboundCtor, issue.H{
			`type`: t.Name(), `signature`: strings.Join(ns, `, `), `position`: ld.pos}))
	}
	ld.c.DefineConstructor(t, params, restricted, creator)
	ld.pos++
}

func (ld *loader) stringKey(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}
	panic(meta.Error(GraphIllegalValue, issue.H{
		`path`: ld.path(), `expected`: `String`, `actual`: fmt.Sprintf(`%T`, k)}))
}

func (ld *loader) stringValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	panic(meta.Error(GraphIllegalValue, issue.H{
		`path`: ld.path(), `expected`: `String`, `actual`: fmt.Sprintf(`%T`, v)}))
}

func (ld *loader) boolValue(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	panic(meta.Error(GraphIllegalValue, issue.H{
		`path`: ld.path(), `expected`: `Boolean`, `actual`: fmt.Sprintf(`%T`, v)}))
}

func (ld *loader) mapValue(v interface{}) ym.MapSlice {
	if v == nil {
		return nil
	}
	if ms, ok := v.(ym.MapSlice); ok {
		return ms
	}
	panic(meta.Error(GraphIllegalValue, issue.H{
		`path`: ld.path(), `expected`: `Hash`, `actual`: fmt.Sprintf(`%T`, v)}))
}

func (ld *loader) listValue(v interface{}) []interface{} {
	if v == nil {
		return nil
	}
	if es, ok := v.([]interface{}); ok {
		return es
	}
	panic(meta.Error(GraphIllegalValue, issue.H{
		`path`: ld.path(), `expected`: `List`, `actual`: fmt.Sprintf(`%T`, v)}))
}

func (ld *loader) pushPath(s string) {
	if len(ld.p) > ld.plen {
		ld.p[ld.plen] = s
	} else {
		ld.p = append(ld.p, s)
	}
	ld.plen++
}

func (ld *loader) popPath() {
	ld.plen--
}

func (ld *loader) path() []string {
	return ld.p[0:ld.plen]
}

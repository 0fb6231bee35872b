package morph

import (
	"bytes"
	"strings"

	"github.com/lingproj/metatype/hash"
	"github.com/lingproj/metatype/meta"
	"github.com/lyraproj/issue/issue"
)

// Features is a bundle of inflectional features, at most one value per kind
type Features struct {
	h *hash.StringHash
}

func NewFeatures() *Features {
	return &Features{hash.NewStringHash(7)}
}

// ParseTag returns the features encoded in a tag produced by Tag. The leading
// base category, everything up to the first dash, is ignored. ParseTag panics
// with MORPH_MALFORMED_FEATURE_PAIR when a pair lacks its colon and with
// MORPH_UNKNOWN_KIND when a label does not name a kind
func ParseTag(s string) *Features {
	f := NewFeatures()
	ps := strings.Split(s, `-`)
	for _, p := range ps[1:] {
		kv := strings.Split(p, `:`)
		if len(kv) != 2 {
			panic(meta.Error(MalformedPair, issue.H{`pair`: p}))
		}
		k, ok := ParseKind(strings.TrimSpace(kv[0]))
		if !ok {
			panic(meta.Error(UnknownKind, issue.H{`label`: strings.TrimSpace(kv[0])}))
		}
		f.Add(k, strings.TrimSpace(kv[1]))
	}
	return f
}

// Add gives the kind a value, replacing any previous value
func (f *Features) Add(k Kind, value string) {
	f.h.Put(k.String(), value)
}

func (f *Features) Has(k Kind) bool {
	return f.h.Includes(k.String())
}

// Value returns the value of the kind. It panics with MORPH_FEATURE_NOT_FOUND
// when the kind has no value
func (f *Features) Value(k Kind) string {
	if v, ok := f.h.Get3(k.String()); ok {
		return v.(string)
	}
	panic(meta.Error(FeatureNotFound, issue.H{`kind`: k.String()}))
}

func (f *Features) Count() int {
	return f.h.Len()
}

// Matches returns the number of features that have the same value in both
// bundles
func (f *Features) Matches(other *Features) int {
	n := 0
	f.h.EachPair(func(k string, v interface{}) {
		if ov, ok := other.h.Get3(k); ok && ov == v {
			n++
		}
	})
	return n
}

func (f *Features) Copy() *Features {
	return &Features{f.h.Copy()}
}

func (f *Features) Equals(other interface{}, g meta.Guard) bool {
	of, ok := other.(*Features)
	return ok && f.h.Equals(of.h, g)
}

func (f *Features) MetaType() meta.Type {
	return featuresType
}

// Tag builds a part of speech tag from a base category and the rendered
// features
func (f *Features) Tag(base string) string {
	return base + f.String()
}

// String renders the features as dash separated key value pairs in canonical
// kind order, so equal bundles always render equal strings
func (f *Features) String() string {
	b := bytes.NewBufferString(``)
	for _, k := range Kinds() {
		if v, ok := f.h.Get3(k.String()); ok {
			b.WriteByte('-')
			b.WriteString(k.String())
			b.WriteByte(':')
			b.WriteString(v.(string))
		}
	}
	return b.String()
}

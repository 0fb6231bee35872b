package morph_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/morph"
	"github.com/lingproj/metatype/types"
	"github.com/lyraproj/issue/issue"
)

func errCode(err error) issue.Code {
	if r, ok := err.(issue.Reported); ok {
		return r.Code()
	}
	return ``
}

func Example_tag() {
	// features render in canonical kind order, not in the order they were added
	f := morph.NewFeatures()
	f.Add(morph.Case, `nom`)
	f.Add(morph.Number, `sg`)
	f.Add(morph.Gender, `f`)
	fmt.Println(f.Tag(`NN`))
	// Output: NN-NUM:sg-GEN:f-CASE:nom
}

func Example_parseTag() {
	f := morph.ParseTag(`VB-TENSE:past-PER:3`)
	fmt.Println(f.Count())
	fmt.Println(f.Value(morph.Tense))
	fmt.Println(f.Value(morph.Person))
	// Output:
	// 2
	// past
	// 3
}

func TestTagRoundTrip(t *testing.T) {
	f := morph.NewFeatures()
	f.Add(morph.Number, `pl`)
	f.Add(morph.Possession, `yes`)
	if p := morph.ParseTag(f.Tag(`NNS`)); !p.Equals(f, nil) {
		t.Errorf(`parsing a produced tag lost features, got %s`, p)
	}
}

func TestAddReplaces(t *testing.T) {
	f := morph.NewFeatures()
	f.Add(morph.Number, `sg`)
	f.Add(morph.Number, `pl`)
	if f.Count() != 1 || f.Value(morph.Number) != `pl` {
		t.Errorf(`a second value for the same kind must replace the first, got %s`, f)
	}
}

func TestMatches(t *testing.T) {
	f1 := morph.NewFeatures()
	f1.Add(morph.Number, `sg`)
	f1.Add(morph.Gender, `f`)

	f2 := morph.NewFeatures()
	f2.Add(morph.Number, `sg`)
	f2.Add(morph.Gender, `m`)
	f2.Add(morph.Person, `3`)

	if n := f1.Matches(f2); n != 1 {
		t.Errorf(`expected 1 match, got %d`, n)
	}
	if n := f2.Matches(f1); n != 1 {
		t.Errorf(`expected 1 match in the other direction, got %d`, n)
	}
}

func TestValueNotFound(t *testing.T) {
	f := morph.NewFeatures()
	err := meta.Try(func() error {
		f.Value(morph.Voice)
		return nil
	})
	if errCode(err) != morph.FeatureNotFound {
		t.Errorf(`expected %s, got %v`, morph.FeatureNotFound, err)
	}
}

func TestParseTagErrors(t *testing.T) {
	cases := []struct {
		tag  string
		code issue.Code
	}{
		{`NN-NUM`, morph.MalformedPair},
		{`NN-NUM:sg:extra`, morph.MalformedPair},
		{`NN-NUMBER:sg`, morph.UnknownKind},
	}
	for _, tc := range cases {
		err := meta.Try(func() error {
			morph.ParseTag(tc.tag)
			return nil
		})
		if errCode(err) != tc.code {
			t.Errorf(`expected %s for %q, got %v`, tc.code, tc.tag, err)
		}
	}
}

func TestFeaturesFactory(t *testing.T) {
	f := meta.FactoryFor(morph.Catalog(), morph.FeaturesType())
	v, ok := f.Create(`-NUM:sg-PER:3`).(*morph.Features)
	if !ok || v.Count() != 2 {
		t.Fatalf(`the tag constructor did not produce a feature bundle, got %v`, v)
	}

	if mt, ok := morph.Catalog().TypeOf(v); !ok || mt != morph.FeaturesType() {
		t.Error(`a feature bundle must derive its own type`)
	}
	if s := f.CreateAs(types.StringableType(), `-GEN:f`); s == nil {
		t.Error(`a feature bundle must be assignable to lang.Stringable`)
	}

	cts := morph.Catalog().Constructors(morph.FeaturesType())
	if len(cts) != 1 {
		t.Fatalf(`expected 1 constructor, got %d`, len(cts))
	}
	err := meta.Try(func() error {
		cts[0].Call(`-NUM:sg`)
		return nil
	})
	if errCode(err) != meta.IllegalAccess {
		t.Errorf(`a direct call must be denied, got %v`, err)
	}
}

func TestFeaturesFactoryBadTag(t *testing.T) {
	err := meta.Try(func() error {
		meta.New(morph.Catalog(), `morph.Features`, `-NUM`)
		return nil
	})
	if errCode(err) != meta.InstantiationError {
		t.Errorf(`expected %s, got %v`, meta.InstantiationError, err)
	}
	if err == nil || !strings.Contains(err.Error(), `malformed key/value pair`) {
		t.Errorf(`the failure does not name its cause, got %v`, err)
	}
}

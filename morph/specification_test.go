package morph_test

import (
	"fmt"
	"testing"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/morph"
	"github.com/lyraproj/issue/issue"
)

const arSpec = `
morphspec: 1.0.0
language: ar
features:
  NUM: [sg, du, pl]
  GEN: [m, f]
  CASE: [nom, acc, gen]
`

func Example_loadSpecification() {
	s := morph.LoadSpecification([]byte(arSpec))
	fmt.Println(s.Language())
	fmt.Println(s)
	fmt.Println(s.FeaturesOf(`-NUM:du-TENSE:past-GEN:x`))
	// Output:
	// ar
	// [NUM, GEN, CASE]
	// -NUM:du
}

func TestLoadSpecification(t *testing.T) {
	s := morph.LoadSpecification([]byte(arSpec))
	if s.Version().String() != `1.0.0` {
		t.Errorf(`expected version 1.0.0, got %s`, s.Version())
	}
	if !s.IsActive(morph.Number) || s.IsActive(morph.Tense) {
		t.Error(`the active kinds do not follow the features key`)
	}
	if vs := s.Values(morph.Gender); len(vs) != 2 || vs[0] != `m` || vs[1] != `f` {
		t.Errorf(`expected the declared gender values, got %v`, vs)
	}
	if r, ok := morph.Lookup(`ar`); !ok || r != s {
		t.Error(`loading must register the specification for its language`)
	}
}

func TestSpecificationActivate(t *testing.T) {
	s := morph.NewSpecification(`en`)
	s.Activate(morph.Tense)
	s.Declare(morph.Number, `sg`, `pl`, `sg`)

	if !s.IsActive(morph.Tense) || !s.IsActive(morph.Number) {
		t.Error(`Activate and Declare must both activate their kind`)
	}
	if vs := s.Values(morph.Number); len(vs) != 2 || vs[0] != `sg` || vs[1] != `pl` {
		t.Errorf(`duplicate values must be dropped, got %v`, vs)
	}

	// Tense is active without declared values, so any value passes
	f := s.FeaturesOf(`-TENSE:past-NUM:dual`)
	if f.Count() != 1 || f.Value(morph.Tense) != `past` {
		t.Errorf(`expected only the tense feature to survive, got %s`, f)
	}
}

func TestLoadSpecificationErrors(t *testing.T) {
	cases := []struct {
		doc  string
		code issue.Code
	}{
		{"language: ar", morph.MorphNoVersion},
		{"morphspec: 2.0.0\nlanguage: ar", morph.MorphVersion},
		{"morphspec: nope\nlanguage: ar", morph.MorphBadVersion},
		{"morphspec: 1.0.0", morph.MorphNoLanguage},
		{"morphspec: 1.0.0\nlanguage: ar\ncolor: red", morph.MorphUnknownKey},
		{"morphspec: 1.0.0\nlanguage: ar\nfeatures: [NUM]", morph.MorphIllegalValue},
		{"morphspec: 1.0.0\nlanguage: ar\nfeatures:\n  STEM: [a]", morph.UnknownKind},
		{`]`, morph.MorphParseError},
	}
	for _, tc := range cases {
		err := meta.Try(func() error {
			morph.LoadSpecification([]byte(tc.doc))
			return nil
		})
		if errCode(err) != tc.code {
			t.Errorf(`expected %s for %q, got %v`, tc.code, tc.doc, err)
		}
	}
}

package morph

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/utils"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/semver/semver"
	ym "gopkg.in/yaml.v2"
)

// LoadableSpecVersions is the range of morphspec document versions that
// LoadSpecification understands
var LoadableSpecVersions, _ = semver.ParseVersionRange(`1.x`)

// Specification declares which feature kinds a language inflects for and which
// surface values each kind can take
type Specification struct {
	language string
	version  semver.Version
	active   map[Kind]bool
	values   map[Kind][]string
}

func NewSpecification(language string) *Specification {
	return &Specification{
		language: language,
		active:   make(map[Kind]bool, len(kindLabels)),
		values:   make(map[Kind][]string, len(kindLabels)),
	}
}

func (s *Specification) Language() string {
	return s.language
}

func (s *Specification) Version() semver.Version {
	return s.version
}

func (s *Specification) Activate(k Kind) {
	s.active[k] = true
}

func (s *Specification) IsActive(k Kind) bool {
	return s.active[k]
}

// Declare activates the kind and declares its surface values. Duplicate
// values are dropped
func (s *Specification) Declare(k Kind, values ...string) {
	s.active[k] = true
	s.values[k] = utils.Unique(values)
}

// Values returns the declared surface values of the kind in declaration order
func (s *Specification) Values(k Kind) []string {
	return s.values[k]
}

// FeaturesOf extracts the features of a rendered feature string that this
// specification recognizes. Pairs for inactive kinds are dropped, as are values
// that a kind declares values for but does not include
func (s *Specification) FeaturesOf(spec string) *Features {
	all := ParseTag(spec)
	f := NewFeatures()
	for _, k := range Kinds() {
		if !(s.IsActive(k) && all.Has(k)) {
			continue
		}
		v := all.Value(k)
		if vs := s.values[k]; len(vs) > 0 && !utils.ContainsString(vs, v) {
			continue
		}
		f.Add(k, v)
	}
	return f
}

// String renders the active kinds in canonical order
func (s *Specification) String() string {
	ls := make([]string, 0, len(s.active))
	for _, k := range Kinds() {
		if s.active[k] {
			ls = append(ls, k.String())
		}
	}
	return `[` + strings.Join(ls, `, `) + `]`
}

var registryLock sync.RWMutex
var registry = make(map[string]*Specification, 7)

// Register makes the specification the one for its language
func Register(s *Specification) {
	registryLock.Lock()
	registry[s.language] = s
	registryLock.Unlock()
}

// Lookup returns the registered specification for the language
func Lookup(language string) (*Specification, bool) {
	registryLock.RLock()
	s, ok := registry[language]
	registryLock.RUnlock()
	return s, ok
}

// LoadSpecification parses a feature specification document, registers the
// specification for its declared language, and returns it. The document
// declares a morphspec version, checked against LoadableSpecVersions, a
// language, and the active kinds with their values:
//
//	morphspec: 1.0.0
//	language: ar
//	features:
//	  NUM: [sg, du, pl]
//	  GEN: [m, f]
func LoadSpecification(content []byte) *Specification {
	ms := make(ym.MapSlice, 0)
	err := ym.Unmarshal(content, &ms)
	if err != nil {
		panic(meta.Error(MorphParseError, issue.H{`detail`: err.Error()}))
	}

	checked := false
	language := ``
	var version semver.Version
	var features ym.MapSlice
	for _, mi := range ms {
		key, ok := mi.Key.(string)
		if !ok {
			panic(meta.Error(MorphIllegalValue, issue.H{
				`path`: []string{}, `expected`: `String`, `actual`: fmt.Sprintf(`%T`, mi.Key)}))
		}
		switch key {
		case `morphspec`:
			version = checkSpecVersion(mi.Value)
			checked = true
		case `language`:
			language = specString([]string{key}, mi.Value)
		case `features`:
			if fs, ok := mi.Value.(ym.MapSlice); ok {
				features = fs
			} else if mi.Value != nil {
				panic(meta.Error(MorphIllegalValue, issue.H{
					`path`: []string{key}, `expected`: `Hash`, `actual`: fmt.Sprintf(`%T`, mi.Value)}))
			}
		default:
			panic(meta.Error(MorphUnknownKey, issue.H{`key`: key, `path`: []string{key}}))
		}
	}
	if !checked {
		panic(meta.Error(MorphNoVersion, issue.NoArgs))
	}
	if language == `` {
		panic(meta.Error(MorphNoLanguage, issue.NoArgs))
	}

	s := NewSpecification(language)
	s.version = version
	for _, mi := range features {
		label := specString([]string{`features`}, mi.Key)
		k, ok := ParseKind(label)
		if !ok {
			panic(meta.Error(UnknownKind, issue.H{`label`: label}))
		}
		vs, ok := mi.Value.([]interface{})
		if !ok && mi.Value != nil {
			panic(meta.Error(MorphIllegalValue, issue.H{
				`path`: []string{`features`, label}, `expected`: `List`, `actual`: fmt.Sprintf(`%T`, mi.Value)}))
		}
		values := make([]string, len(vs))
		for i, v := range vs {
			values[i] = specString([]string{`features`, label}, v)
		}
		s.Declare(k, values...)
	}
	Register(s)
	return s
}

func specString(path []string, v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	panic(meta.Error(MorphIllegalValue, issue.H{
		`path`: path, `expected`: `String`, `actual`: fmt.Sprintf(`%T`, v)}))
}

func checkSpecVersion(v interface{}) semver.Version {
	s, ok := v.(string)
	if !ok {
		panic(meta.Error(MorphBadVersion, issue.H{`str`: fmt.Sprintf(`%v`, v), `detail`: `not a string`}))
	}
	ver, err := semver.ParseVersion(s)
	if err != nil {
		panic(meta.Error(MorphBadVersion, issue.H{`str`: s, `detail`: err.Error()}))
	}
	if !LoadableSpecVersions.Includes(ver) {
		panic(meta.Error(MorphVersion, issue.H{`version`: ver, `expected_range`: LoadableSpecVersions}))
	}
	return ver
}

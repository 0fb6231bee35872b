package morph

import (
	"strings"

	"github.com/lyraproj/issue/issue"
)

const (
	MorphParseError   = `MORPH_PARSE_ERROR`
	MorphNoVersion    = `MORPH_VERSION_REQUIRED`
	MorphBadVersion   = `MORPH_INVALID_VERSION`
	MorphVersion      = `MORPH_UNHANDLED_VERSION`
	MorphNoLanguage   = `MORPH_LANGUAGE_REQUIRED`
	MorphUnknownKey   = `MORPH_UNRECOGNIZED_KEY`
	MorphIllegalValue = `MORPH_VALUE_MUST_BE_TYPE`
	FeatureNotFound   = `MORPH_FEATURE_NOT_FOUND`
	MalformedPair     = `MORPH_MALFORMED_FEATURE_PAIR`
	UnknownKind       = `MORPH_UNKNOWN_KIND`
)

func joinPath(path interface{}) string {
	return strings.Join(path.([]string), `/`)
}

func init() {
	issue.Hard(MorphParseError, `the feature specification document could not be parsed: %{detail}`)

	issue.Hard(MorphNoVersion, `the document does not declare a morphspec version`)

	issue.Hard(MorphBadVersion, `'%{str}' is not a valid morphspec version: %{detail}`)

	issue.Hard(MorphVersion, `morphspec version %{version} is not included in the range %{expected_range}`)

	issue.Hard(MorphNoLanguage, `the document does not declare a language`)

	issue.Hard2(MorphUnknownKey, `unrecognized key '%{key}'. Path %{path}`, issue.HF{`path`: joinPath})

	issue.Hard2(MorphIllegalValue, `the value must be %{expected}. Got %{actual}. Path %{path}`,
		issue.HF{`path`: joinPath, `expected`: issue.AnOrA, `actual`: issue.AnOrA})

	issue.Hard(FeatureNotFound, `value requested for feature %{kind} which is not present`)

	issue.Hard(MalformedPair, `malformed key/value pair '%{pair}'`)

	issue.Hard(UnknownKind, `'%{label}' is not the label of a feature kind`)
}

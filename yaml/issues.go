package yaml

import (
	"strings"

	"github.com/lyraproj/issue/issue"
)

const (
	GraphParseError   = `GRAPH_PARSE_ERROR`
	GraphIllegalValue = `GRAPH_VALUE_MUST_BE_TYPE`
	GraphUnknownKey   = `GRAPH_UNRECOGNIZED_KEY`
	GraphNoVersion    = `GRAPH_VERSION_REQUIRED`
	GraphBadVersion   = `GRAPH_INVALID_VERSION`
	GraphVersion      = `GRAPH_UNHANDLED_VERSION`
	GraphUnboundCtor  = `GRAPH_UNBOUND_CONSTRUCTOR`
)

func joinPath(path interface{}) string {
	return strings.Join(path.([]string), `/`)
}

func init() {
	issue.Hard(GraphParseError, `the type graph document could not be parsed: %{detail}`)

	issue.Hard2(GraphIllegalValue, `the value must be %{expected}. Got %{actual}. Path %{path}`,
		issue.HF{`path`: joinPath, `expected`: issue.AnOrA, `actual`: issue.AnOrA})

	issue.Hard2(GraphUnknownKey, `unrecognized key '%{key}'. Path %{path}`, issue.HF{`path`: joinPath})

	issue.Hard(GraphNoVersion, `the document does not declare a typegraph version`)

	issue.Hard(GraphBadVersion, `'%{str}' is not a valid typegraph version: %{detail}`)

	issue.Hard(GraphVersion, `typegraph version %{version} is not included in the range %{expected_range}`)

	issue.Hard(GraphUnboundCtor, `no creator was bound for constructor %{type}(%{signature}) at position %{position}`)
}

package process

import (
	"github.com/lyraproj/issue/issue"
)

const (
	InvalidPort        = `PROCESS_INVALID_PORT`
	UnsupportedCharset = `PROCESS_UNSUPPORTED_CHARSET`
)

func init() {
	issue.Hard(InvalidPort, `%{port} is not a valid TCP port`)

	issue.Hard(UnsupportedCharset, `the charset '%{charset}' is not supported, use utf-8`)
}

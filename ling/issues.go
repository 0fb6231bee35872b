package ling

import (
	"github.com/lyraproj/issue/issue"
)

const (
	UnevenPairs = `LING_KEY_VALUE_MISMATCH`
)

func init() {
	issue.Hard(UnevenPairs, `the number of keys %{keys} does not match the number of values %{values}`)
}

package utils

import (
	"strings"
)

// ContainsString returns true if strings contains str
func ContainsString(strings []string, str string) bool {
	if str != `` {
		for _, v := range strings {
			if v == str {
				return true
			}
		}
	}
	return false
}

// Unique creates a new slice where all duplicate strings in the given slice have been removed. Order is retained
func Unique(strings []string) []string {
	top := len(strings)
	if top < 2 {
		return strings
	}
	exists := make(map[string]bool, top)
	result := make([]string, 0, top)

	for _, v := range strings {
		if !exists[v] {
			exists[v] = true
			result = append(result, v)
		}
	}
	return result
}

// IsQualified returns true if the given name has more than one dot separated segment
func IsQualified(name string) bool {
	return strings.IndexByte(name, '.') > 0
}

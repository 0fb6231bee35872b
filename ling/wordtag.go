package ling

import (
	"strings"
)

// WordTag is a word together with its part of speech tag
type WordTag struct {
	word string
	tag  string
}

func NewWordTag(word, tag string) WordTag {
	return WordTag{word, tag}
}

// ParseWordTag splits a token of the form word/tag. The last slash separates,
// so a word may itself contain slashes. A token without a slash is a word
// without a tag
func ParseWordTag(s string) WordTag {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return WordTag{s[:i], s[i+1:]}
	}
	return WordTag{s, ``}
}

func (wt WordTag) Word() string {
	return wt.word
}

func (wt WordTag) Tag() string {
	return wt.tag
}

func (wt WordTag) String() string {
	if wt.tag == `` {
		return wt.word
	}
	return wt.word + `/` + wt.tag
}

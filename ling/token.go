package ling

import (
	"github.com/lingproj/metatype/hash"
	"github.com/lingproj/metatype/meta"
	"github.com/lyraproj/issue/issue"
)

// Annotation keys of a Token
const (
	TextKey    = `text`
	WordKey    = `word`
	CurrentKey = `current`
	TagKey     = `tag`
	BeginKey   = `begin`
	EndKey     = `end`
)

// Token is a labeled token, an open bundle of annotations under string keys.
// The typed accessors cover the annotations that the rest of this module uses
type Token struct {
	h *hash.StringHash
}

func NewToken() *Token {
	return &Token{hash.NewStringHash(8)}
}

func (t *Token) Get(key string) (interface{}, bool) {
	return t.h.Get3(key)
}

func (t *Token) Set(key string, value interface{}) {
	t.h.Put(key, value)
}

func (t *Token) Text() string {
	return t.stringAt(TextKey)
}

func (t *Token) SetText(s string) {
	t.h.Put(TextKey, s)
}

func (t *Token) Word() string {
	return t.stringAt(WordKey)
}

func (t *Token) SetWord(s string) {
	t.h.Put(WordKey, s)
}

func (t *Token) Current() string {
	return t.stringAt(CurrentKey)
}

func (t *Token) SetCurrent(s string) {
	t.h.Put(CurrentKey, s)
}

func (t *Token) Tag() string {
	return t.stringAt(TagKey)
}

func (t *Token) SetTag(s string) {
	t.h.Put(TagKey, s)
}

// Offsets returns the rune offsets of the token in its source text. The end
// offset addresses the rune after the last one of the token
func (t *Token) Offsets() (begin, end int, ok bool) {
	b, bok := t.h.Get3(BeginKey)
	e, eok := t.h.Get3(EndKey)
	if bok && eok {
		return b.(int), e.(int), true
	}
	return 0, 0, false
}

// Equals compares the annotations of two tokens. Tokens can be annotated with
// other tokens so comparisons in progress are assumed to hold when they come
// around again
func (t *Token) Equals(other interface{}, g meta.Guard) bool {
	ot, ok := other.(*Token)
	if !ok {
		return false
	}
	if g == nil {
		g = make(meta.Guard)
	}
	if g.Seen(t, ot) {
		return true
	}
	return t.h.Equals(ot.h, g)
}

func (t *Token) String() string {
	if w, ok := t.h.Get3(WordKey); ok {
		return w.(string)
	}
	return t.stringAt(TextKey)
}

func (t *Token) stringAt(key string) string {
	if v, ok := t.h.Get3(key); ok {
		return v.(string)
	}
	return ``
}

// TokenFactory makes tokens, optionally recording source offsets on them
type TokenFactory struct {
	addOffsets bool
}

func NewTokenFactory(addOffsets bool) *TokenFactory {
	return &TokenFactory{addOffsets}
}

// MakeToken makes a token for a piece of text that starts at the given rune
// offset. The text is also the initial word and current form
func (tf *TokenFactory) MakeToken(text string, begin, length int) *Token {
	t := NewToken()
	t.SetText(text)
	t.SetWord(text)
	t.SetCurrent(text)
	if tf.addOffsets {
		t.h.Put(BeginKey, begin)
		t.h.Put(EndKey, begin+length)
	}
	return t
}

func (tf *TokenFactory) MakeEmpty() *Token {
	return NewToken()
}

// MakeFromPairs makes a token with the given annotations. It panics with
// LING_KEY_VALUE_MISMATCH when the slices differ in length
func (tf *TokenFactory) MakeFromPairs(keys []string, values []interface{}) *Token {
	if len(keys) != len(values) {
		panic(meta.Error(UnevenPairs, issue.H{`keys`: len(keys), `values`: len(values)}))
	}
	t := NewToken()
	for i, k := range keys {
		t.h.Put(k, values[i])
	}
	return t
}

func (tf *TokenFactory) Copy(t *Token) *Token {
	return &Token{t.h.Copy()}
}

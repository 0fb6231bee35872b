package types

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/lingproj/metatype/utils"
)

type tokenType int

const (
	end = iota
	name
	leftParen
	rightParen
	comma
)

func (t tokenType) String() (s string) {
	switch t {
	case end:
		s = "end"
	case name:
		s = "name"
	case leftParen:
		s = "leftParen"
	case rightParen:
		s = "rightParen"
	case comma:
		s = "comma"
	default:
		s = "*UNKNOWN TOKEN*"
	}
	return
}

const (
	stNothing = iota
	stName
	stNameSepStart
)

type token struct {
	s string
	i tokenType
}

func (t token) String() string {
	return fmt.Sprintf("%s: '%s'", t.i.String(), t.s)
}

// scan delivers the tokens of a constructor signature to the given function. A
// signature consists of qualified names, parentheses, and commas, as in
//
//	geom.Point(int, int)
func scan(sr *utils.StringReader, tf func(t token) error) (err error) {
	buf := bytes.NewBufferString(``)
	state := stNothing

	badToken := func(r rune) error {
		return fmt.Errorf("unexpected character '%c'", r)
	}

	for {
		r := sr.Next()
		if r == utf8.RuneError {
			return errors.New("unicode error")
		}

		switch state {
		case stName:
			if r == '_' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
				buf.WriteRune(r)
				continue
			}
			if r == '.' {
				state = stNameSepStart
				buf.WriteRune(r)
				continue
			}
			if err = tf(token{buf.String(), name}); err != nil {
				return err
			}
			buf.Reset()
			state = stNothing
		case stNameSepStart:
			if r == '_' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
				state = stName
				buf.WriteRune(r)
				continue
			}
			return badToken(r)
		}

		if r == 0 {
			break
		}

		switch r {
		case ' ', '\t', '\n':
		case '(':
			if err = tf(token{string(r), leftParen}); err != nil {
				return err
			}
		case ')':
			if err = tf(token{string(r), rightParen}); err != nil {
				return err
			}
		case ',':
			if err = tf(token{string(r), comma}); err != nil {
				return err
			}
		default:
			if r == '_' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
				buf.WriteRune(r)
				state = stName
			} else {
				return badToken(r)
			}
		}
	}
	if err = tf(token{``, end}); err != nil {
		return err
	}
	return nil
}

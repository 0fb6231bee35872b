package types

import (
	"bytes"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/utils"
	"github.com/lyraproj/issue/issue"
)

// parseSignature parses a constructor signature against the given catalog. The
// receiver is always returned. When the signature has a parameter list, locked is
// true and parameters holds the resolved parameter types, possibly none. A bare
// type name yields locked false
func parseSignature(c meta.Catalog, signature string) (receiver meta.Type, parameters []meta.Type, locked bool) {
	tokens := make([]token, 0, 8)
	err := scan(utils.NewStringReader(signature), func(t token) error {
		tokens = append(tokens, t)
		return nil
	})
	bad := func(detail string) issue.Reported {
		return meta.Error(meta.BadSignature, issue.H{`signature`: signature, `detail`: detail})
	}
	if err != nil {
		panic(bad(err.Error()))
	}

	ix := 0
	next := func() token {
		t := tokens[ix]
		if t.i != end {
			ix++
		}
		return t
	}

	t := next()
	if t.i != name {
		panic(bad(`expected a type name`))
	}
	receiver = c.Resolve(t.s)

	t = next()
	if t.i == end {
		return receiver, nil, false
	}
	if t.i != leftParen {
		panic(bad(`expected '('`))
	}

	parameters = []meta.Type{}
	t = next()
	if t.i != rightParen {
		for {
			if t.i != name {
				panic(bad(`expected a type name`))
			}
			parameters = append(parameters, c.Resolve(t.s))
			t = next()
			if t.i == rightParen {
				break
			}
			if t.i != comma {
				panic(bad(`expected ',' or ')'`))
			}
			t = next()
		}
	}
	if next().i != end {
		panic(bad(`unexpected text after ')'`))
	}
	return receiver, parameters, true
}

// signatureString renders a parameter list the way it is written in a signature
func signatureString(parameters []meta.Type) string {
	b := bytes.NewBufferString(``)
	for i, p := range parameters {
		if i > 0 {
			b.WriteString(`, `)
		}
		b.WriteString(p.Name())
	}
	return b.String()
}

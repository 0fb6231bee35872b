package ling_test

import (
	"fmt"
	"testing"

	"github.com/lingproj/metatype/ling"
	"github.com/lingproj/metatype/meta"
	"github.com/lyraproj/issue/issue"
)

func Example_parseWordTag() {
	fmt.Println(ling.ParseWordTag(`boat/NN`).Word())
	fmt.Println(ling.ParseWordTag(`boat/NN`).Tag())
	fmt.Println(ling.ParseWordTag(`and/or/CC`).Word())
	fmt.Println(ling.ParseWordTag(`bare`).Tag() == ``)
	// Output:
	// boat
	// NN
	// and/or
	// true
}

func TestWordTagString(t *testing.T) {
	if s := ling.NewWordTag(`boat`, `NN`).String(); s != `boat/NN` {
		t.Errorf(`expected boat/NN, got %s`, s)
	}
	if s := ling.NewWordTag(`bare`, ``).String(); s != `bare` {
		t.Errorf(`an empty tag must not render a slash, got %s`, s)
	}
	wt := ling.ParseWordTag(`and/or/CC`)
	if wt.String() != `and/or/CC` {
		t.Errorf(`parse and render must round trip, got %s`, wt)
	}
}

func TestMakeToken(t *testing.T) {
	tf := ling.NewTokenFactory(true)
	tk := tf.MakeToken(`boats`, 10, 5)
	if tk.Text() != `boats` || tk.Word() != `boats` || tk.Current() != `boats` {
		t.Errorf(`the text must be word and current form as well, got %s`, tk)
	}
	b, e, ok := tk.Offsets()
	if !ok || b != 10 || e != 15 {
		t.Errorf(`expected offsets 10..15, got %d..%d, %v`, b, e, ok)
	}

	tk = ling.NewTokenFactory(false).MakeToken(`boats`, 10, 5)
	if _, _, ok = tk.Offsets(); ok {
		t.Error(`a factory without offsets must not record them`)
	}
}

func TestMakeEmpty(t *testing.T) {
	tk := ling.NewTokenFactory(true).MakeEmpty()
	if tk.Text() != `` || tk.String() != `` {
		t.Errorf(`an empty token has no text, got %s`, tk)
	}
	tk.SetWord(`fish`)
	tk.SetTag(`NN`)
	if tk.String() != `fish` || tk.Tag() != `NN` {
		t.Errorf(`annotations set later must be readable, got %s`, tk)
	}
}

func TestMakeFromPairs(t *testing.T) {
	tf := ling.NewTokenFactory(false)
	tk := tf.MakeFromPairs(
		[]string{ling.WordKey, ling.TagKey},
		[]interface{}{`boats`, `NNS`})
	if tk.Word() != `boats` || tk.Tag() != `NNS` {
		t.Errorf(`the pairs were not applied, got %s`, tk)
	}

	err := meta.Try(func() error {
		tf.MakeFromPairs([]string{ling.WordKey}, []interface{}{`a`, `b`})
		return nil
	})
	if r, ok := err.(issue.Reported); !ok || r.Code() != ling.UnevenPairs {
		t.Errorf(`expected %s, got %v`, ling.UnevenPairs, err)
	}
}

func TestCopy(t *testing.T) {
	tf := ling.NewTokenFactory(true)
	tk := tf.MakeToken(`boats`, 0, 5)
	cp := tf.Copy(tk)
	if !cp.Equals(tk, nil) {
		t.Error(`a copy must equal its original`)
	}
	cp.SetWord(`boat`)
	if tk.Word() != `boats` {
		t.Error(`changing a copy must not change the original`)
	}
}

func TestEqualsCyclic(t *testing.T) {
	tf := ling.NewTokenFactory(false)
	a := tf.MakeToken(`boats`, 0, 5)
	b := tf.MakeToken(`boats`, 0, 5)
	a.Set(`head`, a)
	b.Set(`head`, b)
	if !a.Equals(b, nil) {
		t.Error(`tokens annotated with themselves must still compare`)
	}
	b.SetTag(`NNS`)
	if a.Equals(b, nil) {
		t.Error(`an extra annotation must break equality`)
	}
}

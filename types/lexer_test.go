package types

import (
	"fmt"
	"testing"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/utils"
)

func Example_scan() {
	const src = `geom.Point( int,
  lang.Float )`
	tf := func(t token) error {
		fmt.Println(t)
		return nil
	}
	err := scan(utils.NewStringReader(src), tf)
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	//name: 'geom.Point'
	//leftParen: '('
	//name: 'int'
	//comma: ','
	//name: 'lang.Float'
	//rightParen: ')'
	//end: ''
}

func Example_scanBadCharacter() {
	tf := func(t token) error {
		return nil
	}
	err := scan(utils.NewStringReader(`lang.String[0]`), tf)
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	//unexpected character '['
}

func TestScanDanglingSeparator(t *testing.T) {
	for _, src := range []string{`lang.`, `lang.5`, `lang..String`} {
		err := scan(utils.NewStringReader(src), func(tk token) error { return nil })
		if err == nil {
			t.Errorf(`scan accepted '%s'`, src)
		}
	}
}

func TestCanon(t *testing.T) {
	if canon(intType) != integerType {
		t.Error(`the compact int form does not normalize to lang.Integer`)
	}
	if canon(integerType) != integerType {
		t.Error(`lang.Integer must normalize to itself`)
	}
	if canon(anyType) != anyType {
		t.Error(`an unpaired type must normalize to itself`)
	}
}

func TestDistanceTerminatesOnCycle(t *testing.T) {
	a := newType(`cycle.A`, nil)
	b := newType(`cycle.B`, a)
	a.(*typ).parent = b

	if _, ok := distance(stringType, a, make(map[meta.Type]int, 8)); ok {
		t.Error(`an unreachable target was found through a parent cycle`)
	}
	if d, ok := distance(b, a, make(map[meta.Type]int, 8)); !ok || d != 1 {
		t.Errorf(`a reachable target within a cycle was not found, got %d, %v`, d, ok)
	}
}

func TestDistancePrefersShortestPath(t *testing.T) {
	// diamond: top is reachable from bottom both through mid and directly as
	// a capability
	top := newType(`diamond.Top`, nil)
	mid := newType(`diamond.Mid`, top)
	bottom := newType(`diamond.Bottom`, mid, top)

	if d, ok := distance(top, bottom, make(map[meta.Type]int, 8)); !ok || d != 1 {
		t.Errorf(`expected the direct capability path of length 1, got %d, %v`, d, ok)
	}
}

func TestHierarchyCycle(t *testing.T) {
	c := newCatalog(nil)
	a := c.DefineType(newType(`cycle.A`, nil))
	b := c.DefineType(newType(`cycle.B`, a))
	a.(*typ).parent = b

	if _, err := Hierarchy(c); err == nil {
		t.Error(`a widening cycle must not have a hierarchy order`)
	}
}

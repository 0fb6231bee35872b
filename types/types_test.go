package types_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/types"
	"github.com/lyraproj/issue/issue"
)

func Example_create() {
	c := meta.NewCatalog(nil)
	fmt.Println(meta.New(c, `lang.Integer`, `0x1f`))
	// Output: 31
}

func Example_widening() {
	// lang.String has no constructor that takes an integer, so the one that
	// takes lang.Any is the closest match
	c := meta.NewCatalog(nil)
	f := meta.Open(c, `lang.String`)
	fmt.Println(f.Create(42))
	// Output: 42
}

func Example_distances() {
	c := meta.NewCatalog(nil)
	d, _ := c.Distance(types.AnyType(), types.PrimIntType())
	fmt.Println(d)
	d, _ = c.Distance(types.IntegerType(), types.PrimIntType())
	fmt.Println(d)
	d, _ = c.Distance(types.StringableType(), types.IntegerType())
	fmt.Println(d)
	_, ok := c.Distance(types.BooleanType(), types.IntegerType())
	fmt.Println(ok)
	// Output:
	// 3
	// 0
	// 3
	// false
}

func Example_signatureFactory() {
	c := meta.NewCatalog(nil)
	f := meta.FactoryFromSignature(c, `lang.Float(lang.String)`)
	fmt.Println(f.Create(`3.14`))
	// Output: 3.14
}

func errCode(err error) issue.Code {
	if r, ok := err.(issue.Reported); ok {
		return r.Code()
	}
	return ``
}

func TestDistanceIdentity(t *testing.T) {
	c := meta.NewCatalog(nil)
	for _, tp := range []meta.Type{types.AnyType(), types.StringType(), types.PrimIntType()} {
		d, ok := c.Distance(tp, tp)
		if !ok || d != 0 {
			t.Errorf(`distance of %s to itself is %d, %v`, tp, d, ok)
		}
	}
}

func TestDistancePairs(t *testing.T) {
	c := meta.NewCatalog(nil)
	pairs := [][2]meta.Type{
		{types.PrimIntType(), types.IntegerType()},
		{types.PrimFloatType(), types.FloatType()},
		{types.PrimBoolType(), types.BooleanType()},
		{types.PrimStringType(), types.StringType()},
		{types.PrimBytesType(), types.BinaryType()},
	}
	for _, p := range pairs {
		if d, ok := c.Distance(p[0], p[1]); !ok || d != 0 {
			t.Errorf(`distance between %s and %s is %d, %v`, p[0], p[1], d, ok)
		}
		if d, ok := c.Distance(p[1], p[0]); !ok || d != 0 {
			t.Errorf(`distance between %s and %s is %d, %v`, p[1], p[0], d, ok)
		}
	}
}

func TestDistanceChain(t *testing.T) {
	c := meta.NewCatalog(nil)
	a := c.DefineType(meta.NewType(`chain.A`, types.AnyType()))
	b := c.DefineType(meta.NewType(`chain.B`, a))
	cc := c.DefineType(meta.NewType(`chain.C`, b))

	if d, ok := c.Distance(a, cc); !ok || d != 2 {
		t.Errorf(`distance from chain.C to chain.A is %d, %v, expected 2`, d, ok)
	}
	if d, ok := c.Distance(b, cc); !ok || d != 1 {
		t.Errorf(`distance from chain.C to chain.B is %d, %v, expected 1`, d, ok)
	}
	if _, ok := c.Distance(cc, a); ok {
		t.Error(`a parent must not be reachable downwards`)
	}
}

func TestDistanceMemoInvalidation(t *testing.T) {
	c := meta.NewCatalog(nil)
	x := c.DefineType(meta.NewType(`memo.X`, nil))
	y := c.DefineType(meta.NewType(`memo.Y`, nil))

	if _, ok := c.Distance(x, y); ok {
		t.Fatal(`unrelated types must have no distance`)
	}
	c.DefinePair(y, x)
	if d, ok := c.Distance(x, y); !ok || d != 0 {
		t.Errorf(`pairing after a lookup is not honored, got %d, %v`, d, ok)
	}
}

func TestDistanceMemoInvalidationAcrossChain(t *testing.T) {
	p := meta.NewCatalog(nil)
	x := p.DefineType(meta.NewType(`memo.X`, nil))
	y := p.DefineType(meta.NewType(`memo.Y`, nil))
	c := meta.NewCatalog(p)

	if _, ok := c.Distance(x, y); ok {
		t.Fatal(`unrelated types must have no distance`)
	}
	p.DefinePair(y, x)
	if d, ok := c.Distance(x, y); !ok || d != 0 {
		t.Errorf(`a pairing in the parent is not honored by the child, got %d, %v`, d, ok)
	}
}

func TestResolutionPicksClosest(t *testing.T) {
	c := meta.NewCatalog(nil)
	box := c.DefineType(meta.NewType(`pick.Box`, types.AnyType()))
	var used string
	c.DefineConstructor(box, []meta.Type{types.AnyType()}, false,
		func(args []interface{}) (interface{}, error) {
			used = `any`
			return used, nil
		})
	c.DefineConstructor(box, []meta.Type{types.StringType()}, false,
		func(args []interface{}) (interface{}, error) {
			used = `string`
			return used, nil
		})

	f := meta.Open(c, `pick.Box`)
	f.Create(`hello`)
	if used != `string` {
		t.Errorf(`expected the lang.String constructor to win, got %s`, used)
	}
	f.Create(42)
	if used != `any` {
		t.Errorf(`expected the lang.Any constructor to win, got %s`, used)
	}
}

func TestResolutionTieBreak(t *testing.T) {
	// lang.Scalar and lang.Comparable are both two widening steps away from an
	// integer argument, so the registration order must decide
	build := func(kinds ...meta.Type) (meta.Catalog, *string) {
		c := meta.NewCatalog(nil)
		mix := c.DefineType(meta.NewType(`tie.Mix`, types.AnyType()))
		used := new(string)
		for _, k := range kinds {
			k := k
			c.DefineConstructor(mix, []meta.Type{k}, false,
				func(args []interface{}) (interface{}, error) {
					*used = k.Name()
					return args[0], nil
				})
		}
		return c, used
	}

	c, used := build(types.ScalarType(), types.ComparableType())
	meta.New(c, `tie.Mix`, 7)
	if *used != `lang.Scalar` {
		t.Errorf(`expected the first registered constructor to win, got %s`, *used)
	}

	c, used = build(types.ComparableType(), types.ScalarType())
	meta.New(c, `tie.Mix`, 7)
	if *used != `lang.Comparable` {
		t.Errorf(`expected the first registered constructor to win, got %s`, *used)
	}
}

type point struct {
	x, y int64
}

type floatPoint struct {
	x, y float64
}

func definePoint(c meta.DefiningCatalog) meta.Type {
	pt := c.DefineType(meta.NewType(`geom.Point`, types.AnyType()))
	c.DefineImplementation(reflect.TypeOf(&point{}), pt)
	c.DefineImplementation(reflect.TypeOf(&floatPoint{}), pt)
	c.DefineConstructor(pt, []meta.Type{types.PrimIntType(), types.PrimIntType()}, false,
		func(args []interface{}) (interface{}, error) {
			x, _ := types.ToInt64(args[0])
			y, _ := types.ToInt64(args[1])
			return &point{x, y}, nil
		})
	c.DefineConstructor(pt, []meta.Type{types.PrimFloatType(), types.PrimFloatType()}, false,
		func(args []interface{}) (interface{}, error) {
			x, _ := types.ToFloat64(args[0])
			y, _ := types.ToFloat64(args[1])
			return &floatPoint{x, y}, nil
		})
	return pt
}

func TestPointResolution(t *testing.T) {
	c := meta.NewCatalog(nil)
	definePoint(c)
	f := meta.Open(c, `geom.Point`)

	if v, ok := f.Create(3, 4).(*point); !ok || v.x != 3 || v.y != 4 {
		t.Errorf(`integer arguments did not select the int constructor, got %v`, v)
	}
	if v, ok := f.Create(3.5, 4.5).(*floatPoint); !ok || v.x != 3.5 {
		t.Errorf(`float arguments did not select the float constructor, got %v`, v)
	}

	err := meta.Try(func() error {
		f.Create(3, 4.5)
		return nil
	})
	if errCode(err) != meta.CtorNotFound {
		t.Errorf(`mixed arguments must not resolve, got %v`, err)
	}
}

func TestCheckMatchesCreate(t *testing.T) {
	c := meta.NewCatalog(nil)
	definePoint(c)
	f := meta.Open(c, `geom.Point`)

	if !f.Check(1, 2) {
		t.Error(`Check is false for arguments that Create accepts`)
	}
	if f.Check() {
		t.Error(`Check is true although no zero argument constructor exists`)
	}
	if f.Check(`x`, `y`) {
		t.Error(`Check is true for arguments that no constructor accepts`)
	}

	err := meta.Try(func() error {
		f.Create()
		return nil
	})
	if errCode(err) != meta.CtorNotFound {
		t.Errorf(`expected %s, got %v`, meta.CtorNotFound, err)
	}
}

func TestCheckInvokesCreator(t *testing.T) {
	c := meta.NewCatalog(nil)
	handle := c.DefineType(meta.NewType(`res.Handle`, types.AnyType()))
	calls := 0
	c.DefineConstructor(handle, []meta.Type{types.PrimStringType()}, false,
		func(args []interface{}) (interface{}, error) {
			calls++
			if args[0] == `` {
				return nil, fmt.Errorf(`empty name`)
			}
			return args[0], nil
		})

	f := meta.Open(c, `res.Handle`)
	if !f.Check(`db`) {
		t.Error(`Check is false although the creator succeeds`)
	}
	if calls != 1 {
		t.Errorf(`Check must attempt the creation, the creator ran %d times`, calls)
	}

	err := meta.Try(func() error {
		f.Check(``)
		return nil
	})
	if errCode(err) != meta.InstantiationError {
		t.Errorf(`a failing creator must surface from Check, got %v`, err)
	}
}

func TestCreateAs(t *testing.T) {
	c := meta.NewCatalog(nil)
	pt := definePoint(c)

	f := meta.Open(c, `geom.Point`)
	if v := f.CreateAs(types.AnyType(), 1, 2); v == nil {
		t.Error(`a created value must be assignable to lang.Any`)
	}
	_ = pt

	err := meta.Try(func() error {
		f.CreateAs(types.StringType(), 1, 2)
		return nil
	})
	if errCode(err) != meta.CastError {
		t.Errorf(`expected %s, got %v`, meta.CastError, err)
	}
}

func TestRestrictedConstructor(t *testing.T) {
	c := meta.NewCatalog(nil)
	tok := c.DefineType(meta.NewType(`sec.Token`, types.AnyType()))
	ct := c.DefineConstructor(tok, []meta.Type{types.PrimStringType()}, true,
		func(args []interface{}) (interface{}, error) {
			return args[0], nil
		})

	direct := func() error {
		ct.Call(`secret`)
		return nil
	}
	if errCode(meta.Try(direct)) != meta.IllegalAccess {
		t.Fatal(`a direct call to a restricted constructor must be denied`)
	}

	f := meta.Open(c, `sec.Token`)
	if v := f.Create(`secret`); v != `secret` {
		t.Errorf(`factory creation through a restricted constructor failed, got %v`, v)
	}

	if !ct.Restricted() {
		t.Error(`the restriction was not restored after factory creation`)
	}
	if errCode(meta.Try(direct)) != meta.IllegalAccess {
		t.Error(`a direct call must still be denied after factory creation`)
	}
}

func TestFactoryEquality(t *testing.T) {
	c := meta.NewCatalog(nil)
	definePoint(c)

	f1 := meta.Open(c, `geom.Point`)
	f2 := meta.Open(c, `geom.Point`)
	if !f1.Equals(f2, nil) {
		t.Error(`two factories for the same type in the same catalog are not equal`)
	}
	if f1.ToKey() != f2.ToKey() {
		t.Error(`two factories for the same type have different keys`)
	}
	if f1.Equals(meta.Open(c, `lang.String`), nil) {
		t.Error(`factories for different types must not be equal`)
	}

	c2 := meta.NewCatalog(nil)
	definePoint(c2)
	if f1.Equals(meta.Open(c2, `geom.Point`), nil) {
		t.Error(`factories from different catalogs must not be equal`)
	}
}

func TestFactoryCacheSetting(t *testing.T) {
	defer meta.ResetSettings()
	c := meta.NewCatalog(nil)
	definePoint(c)

	f1 := meta.Open(c, `geom.Point`)
	if f2 := meta.Open(c, `geom.Point`); f1 != f2 {
		t.Error(`the factory cache did not return the same handle`)
	}

	meta.Set(`cache_factories`, false)
	f3 := meta.Open(c, `geom.Point`)
	if !f1.Equals(f3, nil) {
		t.Error(`an uncached factory must still equal its cached twin`)
	}
}

func TestFactoryCacheInvalidation(t *testing.T) {
	p := meta.NewCatalog(nil)
	first := p.DefineType(meta.NewType(`shade.T`, types.AnyType()))
	c := meta.NewCatalog(p)

	if f := meta.Open(c, `shade.T`); f.Type() != first {
		t.Fatal(`the factory must serve the parent type before it is shadowed`)
	}
	second := c.DefineType(meta.NewType(`shade.T`, types.AnyType()))
	if f := meta.Open(c, `shade.T`); f.Type() != second {
		t.Error(`a cached factory must not outlive a shadowing definition`)
	}
}

func TestLockedFactoryTracksNewConstructors(t *testing.T) {
	c := meta.NewCatalog(nil)
	box := c.DefineType(meta.NewType(`wrap.Box`, types.AnyType()))
	var used string
	c.DefineConstructor(box, []meta.Type{types.AnyType()}, false,
		func(args []interface{}) (interface{}, error) {
			used = `any`
			return args[0], nil
		})

	meta.FactoryFromSignature(c, `wrap.Box(lang.String)`).Create(`x`)
	if used != `any` {
		t.Fatalf(`expected the lang.Any constructor, got %s`, used)
	}

	c.DefineConstructor(box, []meta.Type{types.StringType()}, false,
		func(args []interface{}) (interface{}, error) {
			used = `string`
			return args[0], nil
		})
	meta.FactoryFromSignature(c, `wrap.Box(lang.String)`).Create(`x`)
	if used != `string` {
		t.Error(`a factory opened after a closer constructor was defined must use it`)
	}
}

func TestTypeNotFound(t *testing.T) {
	c := meta.NewCatalog(nil)
	err := meta.Try(func() error {
		meta.Open(c, `geom.Missing`)
		return nil
	})
	if errCode(err) != meta.TypeNotFound {
		t.Errorf(`expected %s, got %v`, meta.TypeNotFound, err)
	}
}

func TestDuplicateType(t *testing.T) {
	c := meta.NewCatalog(nil)
	c.DefineType(meta.NewType(`dup.T`, nil))
	err := meta.Try(func() error {
		c.DefineType(meta.NewType(`dup.T`, nil))
		return nil
	})
	if errCode(err) != meta.DuplicateType {
		t.Errorf(`expected %s, got %v`, meta.DuplicateType, err)
	}
}

func TestFrozenStaticCatalog(t *testing.T) {
	err := meta.Try(func() error {
		meta.StaticCatalog().(meta.DefiningCatalog).DefineType(meta.NewType(`lang.Rogue`, nil))
		return nil
	})
	if errCode(err) != meta.FrozenCatalog {
		t.Errorf(`expected %s, got %v`, meta.FrozenCatalog, err)
	}
}

func TestInstantiationError(t *testing.T) {
	c := meta.NewCatalog(nil)
	err := meta.Try(func() error {
		meta.New(c, `lang.Integer`, `not a number`)
		return nil
	})
	if errCode(err) != meta.InstantiationError {
		t.Errorf(`expected %s, got %v`, meta.InstantiationError, err)
	}
}

func TestCreatorPanicIsWrapped(t *testing.T) {
	c := meta.NewCatalog(nil)
	boom := c.DefineType(meta.NewType(`err.Boom`, nil))
	c.DefineConstructor(boom, []meta.Type{}, false,
		func(args []interface{}) (interface{}, error) {
			panic(`no can do`)
		})
	err := meta.Try(func() error {
		meta.New(c, `err.Boom`)
		return nil
	})
	if errCode(err) != meta.InstantiationError {
		t.Errorf(`expected %s, got %v`, meta.InstantiationError, err)
	}
}

func TestBadSignature(t *testing.T) {
	c := meta.NewCatalog(nil)
	for _, s := range []string{`lang.String(`, `lang.String(int,)`, `(int)`, `lang.String)x`, `lang.String(int) x`} {
		err := meta.Try(func() error {
			meta.FactoryFromSignature(c, s)
			return nil
		})
		if errCode(err) != meta.BadSignature {
			t.Errorf(`expected %s for '%s', got %v`, meta.BadSignature, s, err)
		}
	}
}

func TestFactoryFor(t *testing.T) {
	c := meta.NewCatalog(nil)
	definePoint(c)

	if f := meta.FactoryFor(c, `geom.Point`); f.Type().Name() != `geom.Point` {
		t.Error(`a qualified name must open a factory for the named type`)
	}
	if f := meta.FactoryFor(c, types.StringType()); f.Type().Name() != `lang.String` {
		t.Error(`a type must open a factory for that type`)
	}
	if f := meta.FactoryFor(c, &point{1, 2}); f.Type().Name() != `geom.Point` {
		t.Error(`a sample value must open a factory for its derived type`)
	}
	lf := meta.FactoryFor(c, `geom.Point(int, int)`)
	if !lf.Check(1, 2) {
		t.Error(`a signature must open a locked factory`)
	}
	err := meta.Try(func() error {
		lf.Check(1)
		return nil
	})
	if errCode(err) != meta.ParameterArityError {
		t.Errorf(`a wrong argument count on a locked factory must raise, got %v`, err)
	}

	err = meta.Try(func() error {
		meta.FactoryFor(c, struct{ q int }{1})
		return nil
	})
	if errCode(err) != meta.UnknownValueType {
		t.Errorf(`expected %s, got %v`, meta.UnknownValueType, err)
	}
}

func TestUnknownValueType(t *testing.T) {
	c := meta.NewCatalog(nil)
	definePoint(c)
	f := meta.Open(c, `geom.Point`)
	err := meta.Try(func() error {
		f.Create(complex(1, 2), complex(3, 4))
		return nil
	})
	if errCode(err) != meta.UnknownValueType {
		t.Errorf(`expected %s, got %v`, meta.UnknownValueType, err)
	}
}

func TestCurrentCatalog(t *testing.T) {
	if meta.CurrentCatalog() != meta.StaticCatalog() {
		t.Error(`without a binding the current catalog is the static catalog`)
	}
	c := meta.NewCatalog(nil)
	err := meta.DoWithCatalog(c, func() error {
		if meta.CurrentCatalog() != c {
			t.Error(`the bound catalog is not current inside DoWithCatalog`)
		}
		return nil
	})
	if err != nil {
		t.Errorf(`DoWithCatalog returned %v`, err)
	}
	if meta.CurrentCatalog() != meta.StaticCatalog() {
		t.Error(`the binding was not removed after DoWithCatalog`)
	}
}

func TestDoWithCatalogConvertsIssues(t *testing.T) {
	c := meta.NewCatalog(nil)
	err := meta.DoWithCatalog(c, func() error {
		meta.Open(meta.CurrentCatalog(), `no.Such`)
		return nil
	})
	if errCode(err) != meta.TypeNotFound {
		t.Errorf(`expected %s, got %v`, meta.TypeNotFound, err)
	}
}

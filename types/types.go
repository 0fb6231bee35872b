package types

import (
	"reflect"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/threadlocal"
)

var staticCatalog *basicCatalog

var (
	anyType        meta.Type
	comparableType meta.Type
	stringableType meta.Type
	scalarType     meta.Type
	numericType    meta.Type
	integerType    meta.Type
	floatType      meta.Type
	stringType     meta.Type
	booleanType    meta.Type
	binaryType     meta.Type
	intType        meta.Type
	fltType        meta.Type
	boolType       meta.Type
	strType        meta.Type
	bytesType      meta.Type
)

const catalogKey = `metatype.catalog`

func init() {
	c := bareCatalog(nil)

	anyType = newType(`lang.Any`, nil)
	comparableType = newType(`lang.Comparable`, nil)
	stringableType = newType(`lang.Stringable`, nil)
	scalarType = newType(`lang.Scalar`, anyType, stringableType)
	numericType = newType(`lang.Numeric`, scalarType, comparableType)
	integerType = newType(`lang.Integer`, numericType)
	floatType = newType(`lang.Float`, numericType)
	stringType = newType(`lang.String`, scalarType, comparableType)
	booleanType = newType(`lang.Boolean`, scalarType, comparableType)
	binaryType = newType(`lang.Binary`, anyType)
	intType = newType(`int`, nil)
	fltType = newType(`float`, nil)
	boolType = newType(`bool`, nil)
	strType = newType(`string`, nil)
	bytesType = newType(`bytes`, nil)

	for _, t := range []meta.Type{
		anyType, comparableType, stringableType, scalarType, numericType, integerType,
		floatType, stringType, booleanType, binaryType, intType, fltType, boolType,
		strType, bytesType} {
		c.DefineType(t)
	}

	c.DefinePair(intType, integerType)
	c.DefinePair(fltType, floatType)
	c.DefinePair(boolType, booleanType)
	c.DefinePair(strType, stringType)
	c.DefinePair(bytesType, binaryType)

	for _, v := range []interface{}{int(0), int8(0), int16(0), int32(0), int64(0), uint(0), uint16(0), uint32(0), uint64(0)} {
		c.DefineImplementation(reflect.TypeOf(v), intType)
	}
	c.DefineImplementation(reflect.TypeOf(float32(0)), fltType)
	c.DefineImplementation(reflect.TypeOf(float64(0)), fltType)
	c.DefineImplementation(reflect.TypeOf(false), boolType)
	c.DefineImplementation(reflect.TypeOf(``), strType)
	c.DefineImplementation(reflect.TypeOf([]byte{}), bytesType)

	defineCoreConstructors(c)

	c.types.Freeze()
	c.frozen = true
	staticCatalog = c

	meta.DefineSetting(`cache_factories`, true)

	meta.NewType = newType
	meta.NewCatalog = newCatalog
	meta.StaticCatalog = func() meta.Catalog { return staticCatalog }
	meta.Open = open
	meta.FactoryFor = factoryFor
	meta.FactoryFromSignature = fromSignature
	meta.New = newInstance
	meta.CurrentCatalog = currentCatalog
	meta.DoWithCatalog = doWithCatalog
}

// AnyType returns the root of the predefined widening graph
func AnyType() meta.Type {
	return anyType
}

// ComparableType returns the predefined capability for ordered values
func ComparableType() meta.Type {
	return comparableType
}

// StringableType returns the predefined capability for values with a text form
func StringableType() meta.Type {
	return stringableType
}

func ScalarType() meta.Type {
	return scalarType
}

func NumericType() meta.Type {
	return numericType
}

func IntegerType() meta.Type {
	return integerType
}

func FloatType() meta.Type {
	return floatType
}

func StringType() meta.Type {
	return stringType
}

func BooleanType() meta.Type {
	return booleanType
}

func BinaryType() meta.Type {
	return binaryType
}

// PrimIntType returns the compact form of lang.Integer
func PrimIntType() meta.Type {
	return intType
}

// PrimFloatType returns the compact form of lang.Float
func PrimFloatType() meta.Type {
	return fltType
}

// PrimBoolType returns the compact form of lang.Boolean
func PrimBoolType() meta.Type {
	return boolType
}

// PrimStringType returns the compact form of lang.String
func PrimStringType() meta.Type {
	return strType
}

// PrimBytesType returns the compact form of lang.Binary
func PrimBytesType() meta.Type {
	return bytesType
}

func currentCatalog() meta.Catalog {
	if c, ok := threadlocal.Get(catalogKey); ok {
		return c.(meta.Catalog)
	}
	return staticCatalog
}

// doWithCatalog binds the catalog to the current go routine, calls the function,
// and restores whatever binding existed before. A raised Reported becomes the
// returned error
func doWithCatalog(c meta.Catalog, f func() error) error {
	return meta.Try(func() error {
		prev, bound := threadlocal.Get(catalogKey)
		if !threadlocal.Initialized() {
			threadlocal.Init()
			defer threadlocal.Cleanup()
		}
		threadlocal.Set(catalogKey, c)
		defer func() {
			if bound {
				threadlocal.Set(catalogKey, prev)
			} else {
				threadlocal.Delete(catalogKey)
			}
		}()
		return f()
	})
}

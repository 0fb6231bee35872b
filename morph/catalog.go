package morph

import (
	"fmt"

	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/types"
)

var featuresType meta.Type
var catalog meta.DefiningCatalog

func init() {
	c := meta.NewCatalog(nil)
	featuresType = c.DefineType(meta.NewType(`morph.Features`, types.AnyType(), types.StringableType()))
	c.DefineConstructor(featuresType, []meta.Type{types.StringType()}, true,
		func(args []interface{}) (interface{}, error) {
			if s, ok := args[0].(string); ok {
				return ParseTag(s), nil
			}
			return nil, fmt.Errorf(`unable to coerce %T argument`, args[0])
		})
	catalog = c
}

// Catalog returns a catalog that extends the predefined one with the
// morph.Features type. The type has a restricted constructor that parses the
// rendered feature form, so bundles can only be created through a factory
func Catalog() meta.Catalog {
	return catalog
}

// FeaturesType returns the type under which Features values are registered
func FeaturesType() meta.Type {
	return featuresType
}

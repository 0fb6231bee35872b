package types

import (
	"fmt"
	"strconv"

	"github.com/lingproj/metatype/meta"
)

// ToInt64 returns the value as an int64 when it is one of the Go integer kinds
func ToInt64(v interface{}) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	}
	return 0, false
}

// ToFloat64 returns the value as a float64 when it is one of the Go float kinds
func ToFloat64(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0.0, false
}

func badArgument(v interface{}) error {
	return fmt.Errorf(`unable to coerce %T argument`, v)
}

// defineCoreConstructors gives the predefined types their conversion and identity
// constructors. Instances of lang.Integer are created as int64 and instances of
// lang.Float as float64, matching what type inference maps back to int and float
func defineCoreConstructors(c meta.DefiningCatalog) {
	integerType := c.Resolve(`lang.Integer`)
	floatType := c.Resolve(`lang.Float`)
	stringType := c.Resolve(`lang.String`)
	booleanType := c.Resolve(`lang.Boolean`)
	binaryType := c.Resolve(`lang.Binary`)
	anyType := c.Resolve(`lang.Any`)

	c.DefineConstructor(stringType, []meta.Type{stringType}, false, func(args []interface{}) (interface{}, error) {
		if s, ok := args[0].(string); ok {
			return s, nil
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(stringType, []meta.Type{anyType}, false, func(args []interface{}) (interface{}, error) {
		return fmt.Sprintf(`%v`, args[0]), nil
	})

	c.DefineConstructor(stringType, []meta.Type{binaryType}, false, func(args []interface{}) (interface{}, error) {
		if b, ok := args[0].([]byte); ok {
			return string(b), nil
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(integerType, []meta.Type{integerType}, false, func(args []interface{}) (interface{}, error) {
		if i, ok := ToInt64(args[0]); ok {
			return i, nil
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(integerType, []meta.Type{stringType}, false, func(args []interface{}) (interface{}, error) {
		if s, ok := args[0].(string); ok {
			return strconv.ParseInt(s, 0, 64)
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(integerType, []meta.Type{floatType}, false, func(args []interface{}) (interface{}, error) {
		if f, ok := ToFloat64(args[0]); ok {
			return int64(f), nil
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(floatType, []meta.Type{floatType}, false, func(args []interface{}) (interface{}, error) {
		if f, ok := ToFloat64(args[0]); ok {
			return f, nil
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(floatType, []meta.Type{stringType}, false, func(args []interface{}) (interface{}, error) {
		if s, ok := args[0].(string); ok {
			return strconv.ParseFloat(s, 64)
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(floatType, []meta.Type{integerType}, false, func(args []interface{}) (interface{}, error) {
		if i, ok := ToInt64(args[0]); ok {
			return float64(i), nil
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(booleanType, []meta.Type{booleanType}, false, func(args []interface{}) (interface{}, error) {
		if b, ok := args[0].(bool); ok {
			return b, nil
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(booleanType, []meta.Type{stringType}, false, func(args []interface{}) (interface{}, error) {
		if s, ok := args[0].(string); ok {
			return strconv.ParseBool(s)
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(binaryType, []meta.Type{binaryType}, false, func(args []interface{}) (interface{}, error) {
		if b, ok := args[0].([]byte); ok {
			return append([]byte(nil), b...), nil
		}
		return nil, badArgument(args[0])
	})

	c.DefineConstructor(binaryType, []meta.Type{stringType}, false, func(args []interface{}) (interface{}, error) {
		if s, ok := args[0].(string); ok {
			return []byte(s), nil
		}
		return nil, badArgument(args[0])
	})
}

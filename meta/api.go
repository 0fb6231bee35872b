package meta

import "reflect"

type (
	// Visitor is a function that receives types during a catalog traversal
	Visitor func(t Type)

	// HashKey is a byte sequence that uniquely identifies a type or a factory within
	// its catalog. Keys start with a non printable character so that they never clash
	// with qualified names
	HashKey string

	// A Type is a named node in the widening graph of a catalog. Instances of a type
	// are acceptable wherever the parent of the type, or one of its capabilities, is
	// expected
	Type interface {
		Equality

		// Name returns the qualified name of this type
		Name() string

		// Parent returns the type that this type widens to, or nil for a root type
		Parent() Type

		// Capabilities returns the capability types that this type satisfies, in
		// declaration order
		Capabilities() []Type

		// Paired returns the type that is interchangeable with this type when argument
		// distances are computed, or nil when no pairing has been declared
		Paired() Type

		// ToKey returns the hash key of this type
		ToKey() HashKey

		String() string
	}

	// Typed is implemented by values that know which catalog type describes them. A
	// value that implements Typed is never subjected to Go type inference
	Typed interface {
		MetaType() Type
	}

	// Creator produces a new instance from the given arguments. A Creator is bound to
	// a constructor when the constructor is defined
	Creator func(args []interface{}) (interface{}, error)

	// A Constructor describes one way of creating instances of its receiver type. The
	// parameter types declared by the constructor decide how well a given argument
	// vector fits it
	Constructor interface {
		Equality

		// Receiver returns the type that this constructor creates instances of
		Receiver() Type

		// Parameters returns the declared parameter types in positional order
		Parameters() []Type

		// Restricted returns true if this constructor can only be called while the
		// catalog holds an accessibility lift for it
		Restricted() bool

		// Call invokes the creator bound to this constructor and returns the created
		// instance. Call raises META_ILLEGAL_ACCESS when the constructor is restricted and
		// no lift is held, and META_INSTANTIATION_ERROR when the creator fails or panics
		Call(args ...interface{}) interface{}
	}

	// A Factory creates instances of one type. It selects the constructor whose
	// parameters are closest to the types of the actual arguments, where closeness is
	// the sum of the widening distances between each parameter and its argument
	Factory interface {
		Equality

		// Type returns the type that this factory creates instances of
		Type() Type

		// Create resolves the constructor closest to the given arguments and invokes
		// it. Create raises META_CTOR_NOT_FOUND when no constructor accepts the arguments
		Create(args ...interface{}) interface{}

		// CreateAs is like Create but raises META_CAST_ERROR unless the created instance is
		// assignable to the given target type
		CreateAs(target Type, args ...interface{}) interface{}

		// Check returns true if a call to Create with the given arguments would find a
		// constructor. The creation is attempted and the instance discarded, so any
		// failure other than META_CTOR_NOT_FOUND is raised just like Create raises it
		Check(args ...interface{}) bool

		// ToKey returns the hash key of this factory. Factories for the same type in
		// the same catalog share one key
		ToKey() HashKey
	}

	// A Catalog resolves qualified names to types and keeps the constructors and the
	// Go implementations that have been registered for them. Catalogs form chains
	// where entries of a parent are visible through all of its children
	Catalog interface {
		// Get returns the type with the given qualified name and true, or nil and
		// false when the name is not known to this catalog or its parents
		Get(name string) (Type, bool)

		// Resolve returns the type with the given qualified name or raises
		// META_TYPE_NOT_FOUND
		Resolve(name string) Type

		// Distance returns the number of widening steps needed to go from the actual
		// type to the target type and true, or zero and false when no chain of
		// parents and capabilities connects the two. A type is at distance zero from
		// itself and from its paired type
		Distance(target, actual Type) (int, bool)

		// Constructors returns the constructors that have been defined for the given
		// type, in the order that they were defined
		Constructors(t Type) []Constructor

		// TypeOf returns the type that describes the given runtime value and true, or
		// nil and false when no type can be derived from the value
		TypeOf(value interface{}) (Type, bool)

		// EachType calls the given visitor once for each type defined in this catalog
		// and its parents. Parent entries are visited first
		EachType(v Visitor)
	}

	// A DefiningCatalog is a catalog that accepts new entries
	DefiningCatalog interface {
		Catalog

		// DefineType adds the given type to this catalog and returns it. DefineType
		// raises META_DUPLICATE_TYPE when the name is already taken in this catalog
		DefineType(t Type) Type

		// DefinePair declares that the two given types are interchangeable for the
		// purpose of distance computation. DefinePair raises META_DUPLICATE_PAIR when
		// either type is already paired with another type
		DefinePair(a, b Type)

		// DefineConstructor adds a constructor for the given receiver type. The
		// creator is called with one argument per parameter. A restricted constructor
		// can only be invoked through a factory
		DefineConstructor(receiver Type, parameters []Type, restricted bool, creator Creator) Constructor

		// DefineImplementation associates a Go type with a catalog type so that
		// TypeOf can map values of that Go type
		DefineImplementation(rt reflect.Type, t Type)
	}

	// A ParentedCatalog is a catalog that delegates failed lookups to a parent
	ParentedCatalog interface {
		DefiningCatalog

		// Parent returns the parent catalog
		Parent() Catalog
	}
)

// NewCatalog creates a new defining catalog with the given parent. A nil parent is
// replaced by the static catalog
var NewCatalog func(parent Catalog) DefiningCatalog

// StaticCatalog returns the frozen catalog that holds the predefined language types
var StaticCatalog func() Catalog

// NewType creates a new type node with the given qualified name, parent, and
// capabilities. The type takes effect once it has been added to a catalog
var NewType func(name string, parent Type, capabilities ...Type) Type

// Open returns a factory for the named type in the given catalog, or raises
// META_TYPE_NOT_FOUND when the catalog does not know the name
var Open func(c Catalog, name string) Factory

// FactoryFor returns a factory for the given target which must be a Type, a
// qualified name string, or a sample value whose type can be derived
var FactoryFor func(c Catalog, target interface{}) Factory

// FactoryFromSignature parses a constructor signature such as
//
//	lang.String(lang.Integer, int)
//
// and returns a factory for the receiver that is locked to the parameter types of
// the signature
var FactoryFromSignature func(c Catalog, signature string) Factory

// New is a convenience for Open(c, name).Create(args...)
var New func(c Catalog, name string, args ...interface{}) interface{}

// CurrentCatalog returns the catalog bound to the current go routine, or the static
// catalog when no binding exists
var CurrentCatalog func() Catalog

// DoWithCatalog binds the given catalog to the current go routine for the duration
// of the given function and converts raised issues into returned errors
var DoWithCatalog func(c Catalog, f func() error) error

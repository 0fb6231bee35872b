package meta

import "github.com/lyraproj/issue/issue"

const (
	BadSetting          = `META_BAD_SETTING`
	BadSignature        = `META_BAD_SIGNATURE`
	CastError           = `META_CAST_ERROR`
	CtorNotFound        = `META_CTOR_NOT_FOUND`
	DuplicateCtor       = `META_DUPLICATE_CTOR`
	DuplicatePair       = `META_DUPLICATE_PAIR`
	DuplicateType       = `META_DUPLICATE_TYPE`
	FrozenCatalog       = `META_FROZEN_CATALOG`
	IllegalAccess       = `META_ILLEGAL_ACCESS`
	InstantiationError  = `META_INSTANTIATION_ERROR`
	ParameterArityError = `META_PARAMETER_ARITY_ERROR`
	TypeNotFound        = `META_TYPE_NOT_FOUND`
	UnknownSetting      = `META_UNKNOWN_SETTING`
	UnknownValueType    = `META_UNKNOWN_VALUE_TYPE`
)

func init() {
	issue.Hard(BadSetting, `cannot change setting '%{name}' from %{old_type} to %{new_type}`)

	issue.Hard(BadSignature, `invalid constructor signature '%{signature}': %{detail}`)

	issue.Hard(CastError, `value of type %{actual} cannot be assigned to %{expected}`)

	issue.Hard(CtorNotFound, `type %{type} has no constructor that accepts (%{signature})`)

	issue.Hard(DuplicateCtor, `a constructor (%{signature}) is already defined for type %{type}`)

	issue.Hard(DuplicatePair, `type %{name} is already paired with %{pair}`)

	issue.Hard2(DuplicateType, `attempt to redefine %{name}`, issue.HF{`name`: issue.Label})

	issue.Hard(FrozenCatalog, `attempt to define %{name} in a frozen catalog`)

	issue.Hard(IllegalAccess, `constructor (%{signature}) of type %{type} is restricted`)

	issue.Hard(InstantiationError, `constructor for %{type} failed: %{detail}`)

	issue.Hard(ParameterArityError, `constructor (%{signature}) expects %{expected} arguments, got %{actual}`)

	issue.Hard2(TypeNotFound, `no type is registered with the name %{name}`, issue.HF{`name`: issue.Label})

	issue.Hard2(UnknownSetting, `attempt to access unknown setting '%{name}'`, issue.HF{`name`: issue.Label})

	issue.Hard(UnknownValueType, `unable to derive a type for value of Go type %{go_type}`)
}

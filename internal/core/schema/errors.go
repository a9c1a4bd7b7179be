package schema

import "errors"

var (
	ErrNoTypeList    = errors.New("type list not built")
	ErrEmptyTypeList = errors.New("type list is empty")
	ErrReservedType  = errors.New("discriminant 0 is reserved for NONE")
	ErrDuplicateType = errors.New("duplicate def type")
	ErrMalformedData = errors.New("malformed entity def")
	ErrNilBlueprint  = errors.New("nil blueprint")
)

package factory

import (
	"errors"

	"github.com/zeusync/blueprint/internal/core/schema"
)

var (
	ErrNotInitialized     = errors.New("entity factory not initialized")
	ErrAlreadyInitialized = errors.New("entity factory already initialized")
	ErrNoLoader           = errors.New("no blueprint loader configured")
	ErrNoFinalizer        = errors.New("no blueprint finalizer configured")
	ErrNoLocator          = errors.New("no system locator configured")
	ErrInvalidSystem      = errors.New("invalid system")
	ErrNilBlueprint       = errors.New("nil blueprint")
	ErrNoTypeList         = schema.ErrNoTypeList
)

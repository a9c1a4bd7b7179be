package systems

import "errors"

var (
	ErrSystemNotFound       = errors.New("system not found")
	ErrSystemAlreadyExists  = errors.New("system already registered")
	ErrInvalidSystem        = errors.New("invalid system")
	ErrMissingDependency    = errors.New("missing system dependency")
	ErrDependencyCycle      = errors.New("system dependency cycle")
	ErrInitializationFailed = errors.New("system initialization failed")
)

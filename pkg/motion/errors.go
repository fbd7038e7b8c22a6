package motion

import "errors"

var (
	// ErrMalformedFrame is returned by a push whose frames do not match
	// the region's joint count. The buffer is left unchanged.
	ErrMalformedFrame = errors.New("frame does not match region joint count")

	// ErrUnknownAction is returned when an action name is not registered.
	ErrUnknownAction = errors.New("unknown action")
)

package kinematics

import "errors"

// ErrOutOfReach is returned when a foot target lies outside the leg's
// reachable annulus. The solver never clamps; callers that want
// best-effort behavior must clamp the target before solving.
var ErrOutOfReach = errors.New("foot target out of reach")

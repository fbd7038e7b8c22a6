package motion

import (
	"fmt"
	"sort"
	"sync"

	"github.com/openpup/go-pup/pkg/actuator"
	"github.com/openpup/go-pup/pkg/gait"
	"github.com/openpup/go-pup/pkg/kinematics"
)

// Action maps a motion name to the frames that perform it on one body
// region. Builders run on demand so gait-backed actions are
// regenerated, never cached.
type Action struct {
	Name        string
	Description string
	Region      actuator.Region
	Frames      func() ([]Frame, error)
}

// Registry is the closed set of named motions the behavior layer can
// request.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// Register adds an action to the registry.
func (r *Registry) Register(a Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[a.Name] = a
}

// Get retrieves an action by name.
func (r *Registry) Get(name string) (Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[name]
	if !ok {
		return Action{}, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	return a, nil
}

// List returns all registered action names, sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptions returns all actions with their descriptions.
func (r *Registry) Descriptions() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.actions))
	for name, a := range r.actions {
		out[name] = a.Description
	}
	return out
}

// Perform builds an action's frames and pushes them to its region.
func (c *Core) Perform(a Action, replace bool, speed float64) error {
	frames, err := a.Frames()
	if err != nil {
		return fmt.Errorf("build %s: %w", a.Name, err)
	}
	return c.PushRegion(a.Region, frames, replace, speed)
}

// legAction wraps a stance-sequence builder as a legs action.
func legAction(name, desc string, build func() ([]kinematics.Stance, error)) Action {
	return Action{
		Name:        name,
		Description: desc,
		Region:      actuator.RegionLegs,
		Frames: func() ([]Frame, error) {
			stances, err := build()
			if err != nil {
				return nil, err
			}
			return framesFor(stances...)
		},
	}
}

// gaitAction wraps a gait generator invocation as a legs action.
func gaitAction(name, desc string, generate func() gait.Cycle) Action {
	return legAction(name, desc, func() ([]kinematics.Stance, error) {
		return generate().Stances, nil
	})
}

// DefaultRegistry returns the full set of built-in motions: static
// postures, the gait-backed locomotion cycles, and the head/tail
// oscillations.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(legAction("stand", "stand at the default height", func() ([]kinematics.Stance, error) {
		return []kinematics.Stance{kinematics.StandStance()}, nil
	}))
	r.Register(legAction("lie", "lie down, belly on the ground", func() ([]kinematics.Stance, error) {
		return []kinematics.Stance{LieStance()}, nil
	}))
	r.Register(legAction("sit", "sit on the hind legs", func() ([]kinematics.Stance, error) {
		return []kinematics.Stance{SitStance()}, nil
	}))
	r.Register(legAction("stretch", "front-leg stretch", func() ([]kinematics.Stance, error) {
		return []kinematics.Stance{StretchStance()}, nil
	}))
	r.Register(legAction("push_up", "push-up set", func() ([]kinematics.Stance, error) {
		return pushupStances(), nil
	}))

	r.Register(gaitAction("forward", "walk one cycle forward", func() gait.Cycle {
		return gait.Walk(gait.Forward, gait.Straight)
	}))
	r.Register(gaitAction("backward", "walk one cycle backward", func() gait.Cycle {
		return gait.Walk(gait.Backward, gait.Straight)
	}))
	r.Register(gaitAction("turn_left", "walk one cycle turning left", func() gait.Cycle {
		return gait.Walk(gait.Forward, gait.Left)
	}))
	r.Register(gaitAction("turn_right", "walk one cycle turning right", func() gait.Cycle {
		return gait.Walk(gait.Forward, gait.Right)
	}))
	r.Register(gaitAction("trot", "trot one cycle forward", func() gait.Cycle {
		return gait.Trot(gait.Forward, gait.Straight)
	}))
	r.Register(gaitAction("trot_left", "trot one cycle turning left", func() gait.Cycle {
		return gait.Trot(gait.Forward, gait.Left)
	}))
	r.Register(gaitAction("trot_right", "trot one cycle turning right", func() gait.Cycle {
		return gait.Trot(gait.Forward, gait.Right)
	}))

	r.Register(Action{
		Name:        "wag",
		Description: "wag the tail",
		Region:      actuator.RegionTail,
		Frames: func() ([]Frame, error) {
			var frames []Frame
			for i := 0; i < 4; i++ {
				frames = append(frames, Frame{30}, Frame{-30})
			}
			frames = append(frames, Frame{0})
			return frames, nil
		},
	})
	r.Register(Action{
		Name:        "shake_head",
		Description: "shake the head side to side",
		Region:      actuator.RegionHead,
		Frames: func() ([]Frame, error) {
			return []Frame{
				{-40, 0, 0}, {40, 0, 0}, {-40, 0, 0}, {40, 0, 0}, {0, 0, 0},
			}, nil
		},
	})
	r.Register(Action{
		Name:        "nod",
		Description: "nod the head",
		Region:      actuator.RegionHead,
		Frames: func() ([]Frame, error) {
			return []Frame{
				{0, 0, -30}, {0, 0, 10}, {0, 0, -30}, {0, 0, 10}, {0, 0, 0},
			}, nil
		},
	})

	return r
}

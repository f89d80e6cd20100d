package sim

import (
	"fmt"
)

// System is a flat list of bodies plus an explicit parent relation.
type System struct {
	bodies  []*Body
	parents []int
}

// NewSystem builds a system from specs, validating the parent relation.
// Parents must reference existing bodies and must not form cycles.
func NewSystem(specs []BodySpec) (*System, error) {
	s := &System{
		bodies:  make([]*Body, len(specs)),
		parents: make([]int, len(specs)),
	}

	for i, spec := range specs {
		p := spec.Parent
		if p != NoParent && (p < 0 || p >= len(specs)) {
			return nil, fmt.Errorf("body %d (%s): parent index %d out of range", i, spec.Name, p)
		}
		if p == i {
			return nil, fmt.Errorf("body %d (%s): orbits itself", i, spec.Name)
		}
		s.bodies[i] = NewBody(spec)
		s.parents[i] = p
	}

	for i := range specs {
		if err := s.checkCycle(i); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// checkCycle walks the parent chain of body i.
func (s *System) checkCycle(i int) error {
	seen := make(map[int]bool)
	for cur := i; cur != NoParent; cur = s.parents[cur] {
		if seen[cur] {
			return fmt.Errorf("body %d (%s): parent chain forms a cycle", i, s.bodies[i].Name())
		}
		seen[cur] = true
	}
	return nil
}

// Len returns the number of bodies.
func (s *System) Len() int {
	return len(s.bodies)
}

// Bodies returns the bodies in definition order.
func (s *System) Bodies() []*Body {
	return s.bodies
}

// Body returns body i.
func (s *System) Body(i int) *Body {
	return s.bodies[i]
}

// Parent returns the parent of body i, or nil if it orbits the origin.
func (s *System) Parent(i int) *Body {
	p := s.parents[i]
	if p == NoParent {
		return nil
	}
	return s.bodies[p]
}

// Children returns the indices of bodies orbiting body i.
func (s *System) Children(i int) []int {
	var out []int
	for j, p := range s.parents {
		if p == i {
			out = append(out, j)
		}
	}
	return out
}

// Find returns the index of the body with the given name.
func (s *System) Find(name string) (int, bool) {
	for i, b := range s.bodies {
		if b.Name() == name {
			return i, true
		}
	}
	return -1, false
}

// Update recomputes every body's model matrix for simulation time t.
func (s *System) Update(t float32) {
	for i, b := range s.bodies {
		if parent := s.Parent(i); parent != nil {
			b.UpdatePosition(t, parent)
		} else {
			b.UpdatePosition(t, nil)
		}
	}
}

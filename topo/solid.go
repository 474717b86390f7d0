package topo

// Solid is a volume bounded by one or more closed shells: the first is
// the outer boundary, the rest bound interior voids.
type Solid[P, C, S any] struct {
	shells []Shell[P, C, S]
}

// NewSolid creates a solid from its boundary shells. Every shell must be
// nonempty and classify as closed.
func NewSolid[P, C, S any](shells []Shell[P, C, S]) (Solid[P, C, S], error) {
	if len(shells) == 0 {
		return Solid[P, C, S]{}, ErrEmptyShell
	}
	ss := make([]Shell[P, C, S], len(shells))
	for i := range shells {
		if shells[i].Len() == 0 {
			return Solid[P, C, S]{}, ErrEmptyShell
		}
		if cond := shells[i].Condition(); cond != ConditionClosed {
			return Solid[P, C, S]{}, &ErrNotClosedShell{Shell: i, Condition: cond}
		}
		ss[i] = NewShell(shells[i].faces...)
	}
	return Solid[P, C, S]{shells: ss}, nil
}

// Len returns the number of boundary shells.
func (s *Solid[P, C, S]) Len() int {
	return len(s.shells)
}

// Shells returns a copy of the boundary shells, outer first.
func (s *Solid[P, C, S]) Shells() []Shell[P, C, S] {
	out := make([]Shell[P, C, S], len(s.shells))
	copy(out, s.shells)
	return out
}

// Shell returns the i-th boundary shell.
func (s *Solid[P, C, S]) Shell(i int) Shell[P, C, S] {
	return s.shells[i]
}

package model

import (
	"fmt"
	"strings"
)

// MaxGraphSlots bounds state space enumeration: 2^8 states.
const MaxGraphSlots = 8

// Occupancy is a witness as a bit set: bit i is set when slot i is occupied.
type Occupancy uint64

// Has reports whether slot i is occupied.
func (o Occupancy) Has(i int) bool {
	return o&(1<<uint(i)) != 0
}

// With returns o with slot i occupied.
func (o Occupancy) With(i int) Occupancy {
	return o | 1<<uint(i)
}

// Without returns o with slot i vacant.
func (o Occupancy) Without(i int) Occupancy {
	return o &^ (1 << uint(i))
}

// Op is a state-changing operation.
type Op string

const (
	OpSet     Op = "set"
	OpTake    Op = "take"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
)

// Transition is one edge of the typestate machine of a map.
type Transition struct {
	From Occupancy
	To   Occupancy
	Op   Op
	Slot int
}

// Graph is the full typestate machine of a map.
type Graph struct {
	Map         *MapConfig
	States      []Occupancy
	Transitions []Transition
}

// Full returns the all-occupied state.
func (g *Graph) Full() Occupancy {
	return Occupancy(1<<uint(len(g.Map.Slots)) - 1)
}

// Label renders a state as the set of occupied slot names.
func (g *Graph) Label(o Occupancy) string {
	var names []string
	for i, s := range g.Map.Slots {
		if o.Has(i) {
			names = append(names, s.Name)
		}
	}
	if len(names) == 0 {
		return "{}"
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// BuildGraph enumerates every witness of m and the operations that move
// between them. Set is partial in prefilled style and total in unfilled
// style; take is partial; remove is total.
func BuildGraph(m *MapConfig) (*Graph, error) {
	n := len(m.Slots)
	if n > MaxGraphSlots {
		return nil, fmt.Errorf("%w: %d slots exceed the graph limit of %d", ErrInvalid, n, MaxGraphSlots)
	}
	g := &Graph{Map: m}
	for o := Occupancy(0); o < 1<<uint(n); o++ {
		g.States = append(g.States, o)
		for i := 0; i < n; i++ {
			if o.Has(i) {
				g.Transitions = append(g.Transitions, Transition{From: o, To: o.Without(i), Op: OpTake, Slot: i})
				if m.StyleOrDefault() == Prefilled {
					g.Transitions = append(g.Transitions, Transition{From: o, To: o, Op: OpReplace, Slot: i})
				} else {
					g.Transitions = append(g.Transitions, Transition{From: o, To: o, Op: OpSet, Slot: i})
				}
			} else {
				g.Transitions = append(g.Transitions, Transition{From: o, To: o.With(i), Op: OpSet, Slot: i})
			}
			g.Transitions = append(g.Transitions, Transition{From: o, To: o.Without(i), Op: OpRemove, Slot: i})
		}
	}
	return g, nil
}

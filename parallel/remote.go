package parallel

import (
	"slices"
)

// RemoteIndices is the communication layer's view of the neighbouring
// processes. Rebuild recomputes the remote index information from the
// local index set and the neighbours; how it does that is up to the
// implementation.
type RemoteIndices interface {
	Neighbours() []int
	SetNeighbours(neighbours []int)
	Rebuild() error
}

// Topology is a RemoteIndices that only records the neighbour set.
// OnRebuild, if set, is called by Rebuild.
type Topology struct {
	neighbours []int
	rebuilds   int

	OnRebuild func(neighbours []int) error
}

// NewTopology returns a topology with the given neighbours.
func NewTopology(neighbours ...int) *Topology {
	t := &Topology{}
	t.SetNeighbours(neighbours)
	return t
}

// Neighbours returns the ascending neighbour ids.
func (t *Topology) Neighbours() []int {
	return slices.Clone(t.neighbours)
}

// SetNeighbours replaces the neighbour set. Duplicates are removed.
func (t *Topology) SetNeighbours(neighbours []int) {
	t.neighbours = normalize(neighbours)
}

// Rebuild runs the OnRebuild hook.
func (t *Topology) Rebuild() error {
	t.rebuilds++
	if t.OnRebuild == nil {
		return nil
	}
	return t.OnRebuild(t.Neighbours())
}

// Rebuilds returns how often Rebuild was called.
func (t *Topology) Rebuilds() int {
	return t.rebuilds
}

// normalize returns the ascending, duplicate free ids.
func normalize(ids []int) []int {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

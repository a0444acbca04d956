package phi

import (
	"gonum.org/v1/gonum/mat"
)

// Network identifies the transition structure a subsystem was built
// from. Containers only need identity comparison and the node count.
type Network interface {
	// Size is the number of nodes in the network.
	Size() int
	// Equal reports whether two networks are the same transition
	// structure.
	Equal(other Network) bool
}

// Subsystem is the collaborator view the containers need: a candidate
// set of network nodes in a fixed state, under an active system cut.
// Repertoire computation lives behind the richer ports.System contract;
// the containers never compute probabilities themselves.
type Subsystem interface {
	// Network returns the parent network.
	Network() Network
	// NodeIndices returns the subsystem's node indices in canonical
	// order.
	NodeIndices() []int
	// State returns the per-node state vector of the whole network.
	State() []int
	// StateOf projects the state onto the given mechanism indices.
	StateOf(mechanism []int) []int
	// Cut returns the active system cut (a no-op cut when unpartitioned).
	Cut() SystemCut
	// CutMatrix returns the precomputed 0/1 matrix of connections severed
	// by the active cut, restricted to the subsystem's node indices.
	CutMatrix() *mat.Dense
	// Equal reports whether two subsystems denote the same nodes, state,
	// and parent network, ignoring cut state.
	Equal(other Subsystem) bool

	// ExpandCauseRepertoire projects a purview-local cause repertoire
	// onto newPurview (the full subsystem when nil) by combining it with
	// the maximum-entropy distribution over the remaining nodes.
	ExpandCauseRepertoire(purview []int, r *Repertoire, newPurview []int) (*Repertoire, error)
	// ExpandEffectRepertoire is the effect-direction counterpart.
	ExpandEffectRepertoire(purview []int, r *Repertoire, newPurview []int) (*Repertoire, error)
}

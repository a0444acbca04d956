package phi

import (
	"gonum.org/v1/gonum/mat"
)

// Hand-rolled collaborator stubs for container tests. Repertoire math is
// out of scope here, so expansion passes distributions through unchanged.

type stubNetwork struct {
	size int
}

func (n stubNetwork) Size() int { return n.size }

func (n stubNetwork) Equal(other Network) bool {
	o, ok := other.(stubNetwork)
	return ok && n.size == o.size
}

type stubSubsystem struct {
	network   stubNetwork
	nodes     []int
	state     []int
	cut       SystemCut
	cutMatrix *mat.Dense
}

func newStubSubsystem(size int, nodes, state []int) *stubSubsystem {
	return &stubSubsystem{
		network:   stubNetwork{size: size},
		nodes:     nodes,
		state:     state,
		cut:       NewCut(nil, nil),
		cutMatrix: &mat.Dense{},
	}
}

func (s *stubSubsystem) Network() Network  { return s.network }
func (s *stubSubsystem) NodeIndices() []int { return copyIndices(s.nodes) }
func (s *stubSubsystem) State() []int       { return copyIndices(s.state) }

func (s *stubSubsystem) StateOf(mechanism []int) []int {
	out := make([]int, len(mechanism))
	for i, idx := range mechanism {
		out[i] = s.state[idx]
	}
	return out
}

func (s *stubSubsystem) Cut() SystemCut        { return s.cut }
func (s *stubSubsystem) CutMatrix() *mat.Dense { return s.cutMatrix }

func (s *stubSubsystem) Equal(other Subsystem) bool {
	o, ok := other.(*stubSubsystem)
	if !ok {
		return false
	}
	return sameIndexSet(s.nodes, o.nodes) &&
		sameIndices(s.state, o.state) &&
		s.network.Equal(o.network)
}

func (s *stubSubsystem) ExpandCauseRepertoire(purview []int, r *Repertoire, newPurview []int) (*Repertoire, error) {
	return r, nil
}

func (s *stubSubsystem) ExpandEffectRepertoire(purview []int, r *Repertoire, newPurview []int) (*Repertoire, error) {
	return r, nil
}

// withCut derives a copy with an active cut and its severed-connection
// matrix, the way a real subsystem would.
func (s *stubSubsystem) withCut(cut Cut) *stubSubsystem {
	out := *s
	out.cut = cut
	out.cutMatrix = cut.CutMatrix()
	return &out
}

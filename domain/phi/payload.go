package phi

// Structural export: each container maps onto a flat payload struct
// suitable for a generic serializer. Repertoires are flattened to their
// one-dimensional form, with the shape carried alongside so importers can
// rebuild them bit-for-bit. The wire format itself (JSON here, via the
// struct tags) is not part of the contract; only the shape is.

// PartPayload is the structural form of a Part.
type PartPayload struct {
	Mechanism []int `json:"mechanism"`
	Purview   []int `json:"purview"`
}

// BipartitionPayload is the structural form of a Bipartition.
type BipartitionPayload [2]PartPayload

// ToPayload exports the part.
func (p Part) ToPayload() PartPayload {
	return PartPayload{Mechanism: p.Mechanism(), Purview: p.Purview()}
}

// PartFromPayload rebuilds a Part.
func PartFromPayload(p PartPayload) Part {
	return NewPart(p.Mechanism, p.Purview)
}

// ToPayload exports the bipartition.
func (bp Bipartition) ToPayload() BipartitionPayload {
	return BipartitionPayload{bp[0].ToPayload(), bp[1].ToPayload()}
}

// BipartitionFromPayload rebuilds a Bipartition.
func BipartitionFromPayload(p BipartitionPayload) Bipartition {
	return NewBipartition(PartFromPayload(p[0]), PartFromPayload(p[1]))
}

// CutPayload is the structural form of a Cut.
type CutPayload struct {
	Severed []int `json:"severed"`
	Intact  []int `json:"intact"`
}

// ToPayload exports the cut.
func (c Cut) ToPayload() CutPayload {
	return CutPayload{Severed: c.Severed(), Intact: c.Intact()}
}

// CutFromPayload rebuilds a Cut.
func CutFromPayload(p CutPayload) Cut {
	return NewCut(p.Severed, p.Intact)
}

// RepertoirePayload carries a flattened repertoire with its shape.
type RepertoirePayload struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

func repertoireToPayload(r *Repertoire) *RepertoirePayload {
	if r == nil {
		return nil
	}
	return &RepertoirePayload{Shape: r.Shape(), Data: r.Flatten()}
}

func repertoireFromPayload(p *RepertoirePayload) (*Repertoire, error) {
	if p == nil {
		return nil, nil
	}
	return NewRepertoire(p.Shape, p.Data)
}

// MipPayload is the structural form of a Mip.
type MipPayload struct {
	Phi                     float64             `json:"phi"`
	Direction               string              `json:"direction"`
	Mechanism               []int               `json:"mechanism"`
	Purview                 []int               `json:"purview"`
	Partition               *BipartitionPayload `json:"partition,omitempty"`
	UnpartitionedRepertoire *RepertoirePayload  `json:"unpartitioned_repertoire,omitempty"`
	PartitionedRepertoire   *RepertoirePayload  `json:"partitioned_repertoire,omitempty"`
}

// ToPayload exports the Mip.
func (m *Mip) ToPayload() MipPayload {
	var partition *BipartitionPayload
	if m.partition != nil {
		p := m.partition.ToPayload()
		partition = &p
	}
	return MipPayload{
		Phi:                     m.phi,
		Direction:               m.direction.String(),
		Mechanism:               m.Mechanism(),
		Purview:                 m.Purview(),
		Partition:               partition,
		UnpartitionedRepertoire: repertoireToPayload(m.unpartitionedRepertoire),
		PartitionedRepertoire:   repertoireToPayload(m.partitionedRepertoire),
	}
}

// MipFromPayload rebuilds a Mip from its structural form.
func MipFromPayload(p MipPayload) (*Mip, error) {
	direction, err := ParseDirection(p.Direction)
	if err != nil {
		return nil, err
	}
	var partition *Bipartition
	if p.Partition != nil {
		bp := BipartitionFromPayload(*p.Partition)
		partition = &bp
	}
	unpartitioned, err := repertoireFromPayload(p.UnpartitionedRepertoire)
	if err != nil {
		return nil, err
	}
	partitioned, err := repertoireFromPayload(p.PartitionedRepertoire)
	if err != nil {
		return nil, err
	}
	return NewMip(p.Phi, direction, p.Mechanism, p.Purview, partition, unpartitioned, partitioned)
}

// MicePayload is the structural form of a Mice.
type MicePayload struct {
	Mip MipPayload `json:"mip"`
}

// ToPayload exports the Mice.
func (m *Mice) ToPayload() MicePayload {
	return MicePayload{Mip: m.mip.ToPayload()}
}

// MiceFromPayload rebuilds a Mice from its structural form.
func MiceFromPayload(p MicePayload) (*Mice, error) {
	mip, err := MipFromPayload(p.Mip)
	if err != nil {
		return nil, err
	}
	return NewMice(mip)
}

// ConceptPayload is the structural form of a Concept. The cause and
// effect repertoires are additionally exported expanded over the full
// subsystem, for consumers that need distributions over a common index
// set.
type ConceptPayload struct {
	Phi        float64      `json:"phi"`
	Mechanism  []int        `json:"mechanism"`
	Cause      *MicePayload `json:"cause,omitempty"`
	Effect     *MicePayload `json:"effect,omitempty"`
	Normalized bool         `json:"normalized"`

	ExpandedCauseRepertoire             *RepertoirePayload `json:"expanded_cause_repertoire,omitempty"`
	ExpandedEffectRepertoire            *RepertoirePayload `json:"expanded_effect_repertoire,omitempty"`
	ExpandedPartitionedCauseRepertoire  *RepertoirePayload `json:"expanded_partitioned_cause_repertoire,omitempty"`
	ExpandedPartitionedEffectRepertoire *RepertoirePayload `json:"expanded_partitioned_effect_repertoire,omitempty"`
}

// ToPayload exports the concept, attaching the expanded repertoires when
// the subsystem collaborator can provide them.
func (c *Concept) ToPayload() ConceptPayload {
	payload := ConceptPayload{
		Phi:        c.phi,
		Mechanism:  c.Mechanism(),
		Normalized: c.normalized,
	}
	if c.cause != nil {
		mp := c.cause.ToPayload()
		payload.Cause = &mp
	}
	if c.effect != nil {
		mp := c.effect.ToPayload()
		payload.Effect = &mp
	}
	if expanded, err := c.ExpandCauseRepertoire(nil); err == nil {
		payload.ExpandedCauseRepertoire = repertoireToPayload(expanded)
	}
	if expanded, err := c.ExpandEffectRepertoire(nil); err == nil {
		payload.ExpandedEffectRepertoire = repertoireToPayload(expanded)
	}
	if expanded, err := c.ExpandPartitionedCauseRepertoire(); err == nil {
		payload.ExpandedPartitionedCauseRepertoire = repertoireToPayload(expanded)
	}
	if expanded, err := c.ExpandPartitionedEffectRepertoire(); err == nil {
		payload.ExpandedPartitionedEffectRepertoire = repertoireToPayload(expanded)
	}
	return payload
}

// ConstellationPayload is the structural form of a Constellation.
type ConstellationPayload []ConceptPayload

// ToPayload exports each concept in order.
func (c Constellation) ToPayload() ConstellationPayload {
	out := make(ConstellationPayload, len(c))
	for i, concept := range c {
		out[i] = concept.ToPayload()
	}
	return out
}

// BigMipPayload is the structural form of a BigMip. Subsystems are
// external collaborators, so only their node indices and state are
// exported, not their transition structure.
type BigMipPayload struct {
	Phi                        float64              `json:"phi"`
	UnpartitionedConstellation ConstellationPayload `json:"unpartitioned_constellation"`
	PartitionedConstellation   ConstellationPayload `json:"partitioned_constellation"`
	SubsystemNodes             []int                `json:"subsystem_nodes"`
	SubsystemState             []int                `json:"subsystem_state"`
	CutSubsystemNodes          []int                `json:"cut_subsystem_nodes"`
}

// ToPayload exports the BigMip.
func (b *BigMip) ToPayload() BigMipPayload {
	return BigMipPayload{
		Phi:                        b.phi,
		UnpartitionedConstellation: b.unpartitionedConstellation.ToPayload(),
		PartitionedConstellation:   b.partitionedConstellation.ToPayload(),
		SubsystemNodes:             b.subsystem.NodeIndices(),
		SubsystemState:             b.subsystem.State(),
		CutSubsystemNodes:          b.cutSubsystem.NodeIndices(),
	}
}

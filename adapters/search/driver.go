// Package search is the reference phi-search driver: it enumerates
// mechanisms, purviews, and partitions, asks the system collaborator for
// repertoires, and composes the container types into concepts,
// constellations, and whole-subsystem results. Repertoire probability
// math never happens here.
package search

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"gophi/domain/core"
	"gophi/domain/phi"
	"gophi/internal/connectivity"
	"gophi/ports"
)

// Options configures a Driver. Zero values select the defaults.
type Options struct {
	// RepertoireMetric measures small-phi distances. Defaults to
	// L1Repertoire.
	RepertoireMetric ports.RepertoireMetric
	// ConstellationMetric measures big-phi distances. Defaults to
	// SumPhiDistance.
	ConstellationMetric ports.ConstellationMetric
	// SingleNodesWithSelfLoopsHavePhi enables the fixed-phi policy for
	// self-looped single-node subsystems.
	SingleNodesWithSelfLoopsHavePhi bool
	// Parallelism bounds concurrent concept computations. Defaults to
	// GOMAXPROCS.
	Parallelism int
}

// Driver runs the phi search over one system.
type Driver struct {
	system      ports.System
	repMetric   ports.RepertoireMetric
	constMetric ports.ConstellationMetric
	selfLoopPhi bool
	parallelism int
	runID       core.RunID
}

// NewDriver builds a driver for the given system.
func NewDriver(system ports.System, opts Options) (*Driver, error) {
	if system == nil {
		return nil, fmt.Errorf("%w: system", core.ErrNilCollaborator)
	}
	d := &Driver{
		system:      system,
		repMetric:   opts.RepertoireMetric,
		constMetric: opts.ConstellationMetric,
		selfLoopPhi: opts.SingleNodesWithSelfLoopsHavePhi,
		parallelism: opts.Parallelism,
		runID:       core.RunID(core.NewID()),
	}
	if d.repMetric == nil {
		d.repMetric = L1Repertoire
	}
	if d.constMetric == nil {
		d.constMetric = SumPhiDistance
	}
	if d.parallelism <= 0 {
		d.parallelism = runtime.GOMAXPROCS(0)
	}
	return d, nil
}

// RunID identifies this driver's results.
func (d *Driver) RunID() core.RunID {
	return d.runID
}

func (d *Driver) repertoire(system ports.System, direction phi.Direction, mechanism, purview []int) (*phi.Repertoire, error) {
	if direction == phi.DirectionCause {
		return system.CauseRepertoire(mechanism, purview)
	}
	return system.EffectRepertoire(mechanism, purview)
}

// FindMip returns the minimum information partition for one mechanism,
// direction, and purview. An empty purview, or a purview with no
// candidate partitions, yields the null Mip. If any partition leaves the
// repertoire unchanged within precision the mechanism is reducible and
// the null Mip is returned immediately.
func (d *Driver) FindMip(ctx context.Context, system ports.System, direction phi.Direction, mechanism, purview []int) (*phi.Mip, error) {
	if len(purview) == 0 {
		return phi.NewNullMip(direction, mechanism, purview), nil
	}
	unpartitioned, err := d.repertoire(system, direction, mechanism, purview)
	if err != nil {
		return nil, fmt.Errorf("unpartitioned repertoire: %w", err)
	}

	candidates := MipBipartitions(mechanism, purview)
	if len(candidates) == 0 {
		return phi.NewNullMip(direction, mechanism, purview), nil
	}

	var best *phi.Mip
	for _, partition := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		partitioned, err := system.PartitionedRepertoire(direction, partition)
		if err != nil {
			return nil, fmt.Errorf("partitioned repertoire for %s: %w", partition, err)
		}
		phiValue, err := d.repMetric(unpartitioned, partitioned)
		if err != nil {
			return nil, fmt.Errorf("repertoire metric: %w", err)
		}
		if phi.PhiEq(phiValue, 0) {
			return phi.NewNullMip(direction, mechanism, purview), nil
		}
		mip, err := phi.NewMip(phiValue, direction, mechanism, purview, &partition, unpartitioned, partitioned)
		if err != nil {
			return nil, err
		}
		if best == nil || mip.Less(best) {
			best = mip
		}
	}
	return best, nil
}

// FindMice returns the maximally irreducible cause or effect for one
// mechanism: the maximal Mip across all candidate purviews (every
// non-empty subset of the subsystem's node indices). Earlier purviews
// win phi ties, matching the canonical enumeration order.
func (d *Driver) FindMice(ctx context.Context, system ports.System, direction phi.Direction, mechanism []int) (*phi.Mice, error) {
	var best *phi.Mip
	for _, purview := range connectivity.Powerset(system.NodeIndices()) {
		if len(purview) == 0 {
			continue
		}
		mip, err := d.FindMip(ctx, system, direction, mechanism, purview)
		if err != nil {
			return nil, err
		}
		if best == nil || mip.Greater(best) {
			best = mip
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: mechanism (%v)", core.ErrNoPurviews, mechanism)
	}
	return phi.NewMice(best)
}

// Concept computes a mechanism's core cause and core effect and pairs
// them. The concept's phi is the minimum of the two sides.
func (d *Driver) Concept(ctx context.Context, mechanism []int) (*ConceptResult, error) {
	return d.concept(ctx, d.system, mechanism)
}

func (d *Driver) concept(ctx context.Context, system ports.System, mechanism []int) (*ConceptResult, error) {
	start := time.Now()
	cause, err := d.FindMice(ctx, system, phi.DirectionCause, mechanism)
	if err != nil {
		return nil, fmt.Errorf("core cause of (%v): %w", mechanism, err)
	}
	effect, err := d.FindMice(ctx, system, phi.DirectionEffect, mechanism)
	if err != nil {
		return nil, fmt.Errorf("core effect of (%v): %w", mechanism, err)
	}
	phiValue := cause.Phi()
	if effect.Phi() < phiValue {
		phiValue = effect.Phi()
	}
	concept := phi.NewConcept(phiValue, mechanism, cause, effect, system, false)
	return &ConceptResult{
		Concept:   concept,
		Elapsed:   time.Since(start),
		CreatedAt: core.Now(),
	}, nil
}

// Constellation computes the concepts of every candidate mechanism,
// keeping the irreducible ones in canonical mechanism order. Concept
// computations run in parallel, bounded by the configured parallelism.
func (d *Driver) Constellation(ctx context.Context) (phi.Constellation, error) {
	return d.constellation(ctx, d.system)
}

func (d *Driver) constellation(ctx context.Context, system ports.System) (phi.Constellation, error) {
	var mechanisms [][]int
	for _, mechanism := range connectivity.Powerset(system.NodeIndices()) {
		if len(mechanism) > 0 {
			mechanisms = append(mechanisms, mechanism)
		}
	}

	results := make([]*ConceptResult, len(mechanisms))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(d.parallelism)
	for i, mechanism := range mechanisms {
		i, mechanism := i, mechanism
		group.Go(func() error {
			result, err := d.concept(groupCtx, system, mechanism)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	constellation := phi.Constellation{}
	for _, result := range results {
		if !result.Concept.IsReducible() {
			constellation = append(constellation, result.Concept)
		}
	}
	return constellation, nil
}

// constellationUnderCut rebuilds the constellation for a cut system,
// recomputing only the concepts the cut damages. Undamaged concepts are
// reused as-is; recomputed concepts that become reducible drop out.
func (d *Driver) constellationUnderCut(ctx context.Context, cutSystem ports.System, unpartitioned phi.Constellation) (phi.Constellation, error) {
	constellation := phi.Constellation{}
	for _, concept := range unpartitioned {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !concept.Cause().DamagedByCut(cutSystem) && !concept.Effect().DamagedByCut(cutSystem) {
			constellation = append(constellation, concept)
			continue
		}
		result, err := d.concept(ctx, cutSystem, concept.Mechanism())
		if err != nil {
			return nil, err
		}
		if !result.Concept.IsReducible() {
			constellation = append(constellation, result.Concept)
		}
	}
	return constellation, nil
}

// FindBigMip finds the minimum information partition at the system
// level: the system cut that least reduces the subsystem's
// constellation. Reducible subsystems yield the null BigMip; a
// single-node subsystem with a self-loop is handled by the configured
// policy instead of being computed.
func (d *Driver) FindBigMip(ctx context.Context) (*Result, error) {
	indices := d.system.NodeIndices()
	if len(indices) == 0 {
		return nil, core.ErrEmptySubsystem
	}

	start := time.Now()

	if len(indices) == 1 {
		i := indices[0]
		if d.system.ConnectivityMatrix().At(i, i) != 0 {
			return d.finish(phi.NewSingleNodeBigMip(d.system, d.selfLoopPhi), start, 0), nil
		}
	}

	unpartitioned, err := d.constellation(ctx, d.system)
	if err != nil {
		return nil, err
	}
	smallPhiTime := time.Since(start)

	if len(unpartitioned) == 0 {
		return d.finish(phi.NewNullBigMip(d.system), start, smallPhiTime), nil
	}

	var best *phi.BigMip
	for _, cut := range systemCuts(indices) {
		cutSystem, err := d.system.WithCut(cut)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", cut, err)
		}
		partitioned, err := d.constellationUnderCut(ctx, cutSystem, unpartitioned)
		if err != nil {
			return nil, err
		}
		bigPhi, err := d.constMetric(unpartitioned, partitioned)
		if err != nil {
			return nil, fmt.Errorf("constellation metric: %w", err)
		}
		candidate, err := phi.NewBigMip(bigPhi, unpartitioned, partitioned, d.system, cutSystem)
		if err != nil {
			return nil, err
		}
		if candidate.IsReducible() {
			return d.finish(phi.NewNullBigMip(d.system), start, smallPhiTime), nil
		}
		if best == nil || candidate.Less(best) {
			best = candidate
		}
	}
	if best == nil {
		// No cuts exist for a single node without a self-loop.
		best = phi.NewNullBigMip(d.system)
	}
	return d.finish(best, start, smallPhiTime), nil
}

func (d *Driver) finish(mip *phi.BigMip, start time.Time, smallPhiTime time.Duration) *Result {
	return &Result{
		ID:        core.ResultID(core.NewID()),
		RunID:     d.runID,
		BigMip:    mip,
		Timing:    Timing{Total: time.Since(start), SmallPhi: smallPhiTime},
		CreatedAt: core.Now(),
	}
}

package genetics

import (
	"fmt"
	stdmath "math"
	"sort"

	"github.com/mhalverson/goneat/neat"
)

// Species groups genomes within compatibility distance of a shared
// representative.
type Species struct {
	LastImproved    uint32
	Representative  GenomeID
	Members         []GenomeID
	Fitness         *float64
	AdjustedFitness *float64
	FitnessHistory  []float64
}

// SpeciesSet owns every live species of a run, keyed by a monotonically
// increasing id that is never reused within a run.
type SpeciesSet struct {
	nextID  uint32
	Species map[uint32]*Species
}

// NewSpeciesSet creates an empty species set whose first allocated id is 1.
func NewSpeciesSet() *SpeciesSet {
	return &SpeciesSet{nextID: 1, Species: make(map[uint32]*Species)}
}

func (ss *SpeciesSet) newSpecies(generation uint32, representative GenomeID) *Species {
	s := &Species{
		LastImproved:   generation,
		Representative: representative,
		Members:        []GenomeID{representative},
	}
	id := ss.nextID
	ss.nextID++
	ss.Species[id] = s
	return s
}

// sortedSpeciesIDs returns species ids in ascending order, for a
// deterministic iteration order over the map.
func (ss *SpeciesSet) sortedSpeciesIDs() []uint32 {
	ids := make([]uint32, 0, len(ss.Species))
	for id := range ss.Species {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Speciate re-seats existing species against the closest still-compatible
// current genome, absorbs the rest into the closest compatible species (or
// founds new ones), recomputes per-species fitness and its softmax-derived
// adjusted fitness, and finally culls stagnated species.
func (ss *SpeciesSet) Speciate(
	generation uint32,
	currentIDs []GenomeID,
	genomes map[GenomeID]*Genome,
	coef DistanceCoefficients,
	cache *DistanceCache,
	compatibilityThreshold float64,
	stagnationAfter int,
	elitismSpecies int,
) {
	unspeciated := make(map[GenomeID]bool, len(currentIDs))
	for _, id := range currentIDs {
		unspeciated[id] = true
	}

	// 1. Re-seat existing species.
	for _, sid := range ss.sortedSpeciesIDs() {
		s := ss.Species[sid]
		rep := genomes[s.Representative]
		var best GenomeID
		bestDist := stdmath.Inf(1)
		found := false
		for _, gid := range currentIDs {
			if !unspeciated[gid] {
				continue
			}
			d := cache.Distance(coef, genomes[gid], rep)
			if d < compatibilityThreshold && d < bestDist {
				bestDist = d
				best = gid
				found = true
			}
		}
		if !found {
			neat.DebugLog(fmt.Sprintf("SPECIES: no compatible genome re-seats species %d, dropping it", sid))
			delete(ss.Species, sid)
			continue
		}
		neat.DebugLog(fmt.Sprintf("SPECIES: re-seating species %d on genome %x (distance %.4f)", sid, uint64(best), bestDist))
		s.Representative = best
		s.Members = []GenomeID{best}
		delete(unspeciated, best)
	}

	// 2. Absorb remaining unspeciated genomes.
	for _, gid := range currentIDs {
		if !unspeciated[gid] {
			continue
		}
		g := genomes[gid]

		var bestID uint32
		bestDist := stdmath.Inf(1)
		found := false
		for _, sid := range ss.sortedSpeciesIDs() {
			s := ss.Species[sid]
			d := cache.Distance(coef, g, genomes[s.Representative])
			if d < compatibilityThreshold && d < bestDist {
				bestDist = d
				bestID = sid
				found = true
			}
		}
		if found {
			ss.Species[bestID].Members = append(ss.Species[bestID].Members, gid)
		} else {
			neat.DebugLog(fmt.Sprintf("SPECIES: founding new species for genome %x, no compatible representative within threshold", uint64(gid)))
			ss.newSpecies(generation, gid)
		}
		delete(unspeciated, gid)
	}

	// 3. Per-species fitness.
	for _, sid := range ss.sortedSpeciesIDs() {
		s := ss.Species[sid]
		sum := 0.0
		for _, m := range s.Members {
			f := genomes[m].Fitness
			if f == nil {
				panic(neat.NewLogicError("genome has no fitness at speciation time"))
			}
			sum += *f
		}
		mean := sum / float64(len(s.Members))

		priorMax := stdmath.Inf(-1)
		for _, h := range s.FitnessHistory {
			if h > priorMax {
				priorMax = h
			}
		}
		s.FitnessHistory = append(s.FitnessHistory, mean)
		s.Fitness = &mean
		if mean > priorMax {
			s.LastImproved = generation
		}
	}

	// 4. Adjusted fitness: softmax over species fitness.
	ids := ss.sortedSpeciesIDs()
	denom := 0.0
	for _, sid := range ids {
		denom += stdmath.Exp(*ss.Species[sid].Fitness)
	}
	for _, sid := range ids {
		adj := stdmath.Exp(*ss.Species[sid].Fitness) / denom
		ss.Species[sid].AdjustedFitness = &adj
	}

	// 5. Stagnation cull.
	ss.cullStagnated(generation, stagnationAfter, elitismSpecies)
}

func (ss *SpeciesSet) cullStagnated(generation uint32, stagnationAfter, elitismSpecies int) {
	type candidate struct {
		id  uint32
		adj float64
	}
	var candidates []candidate
	for _, sid := range ss.sortedSpeciesIDs() {
		s := ss.Species[sid]
		if int(generation)-int(s.LastImproved) >= stagnationAfter {
			candidates = append(candidates, candidate{sid, *s.AdjustedFitness})
		}
	}
	if len(candidates) == 0 {
		return
	}
	// Candidates are sorted by adjusted fitness descending, so the
	// best-performing stagnated species are removed first.
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].adj > candidates[j].adj })

	budget := len(ss.Species) - elitismSpecies
	if budget < 0 {
		budget = 0
	}
	if budget > len(candidates) {
		budget = len(candidates)
	}
	for i := 0; i < budget; i++ {
		neat.DebugLog(fmt.Sprintf("SPECIES: culling stagnated species %d (adjusted fitness %.4f, generation %d)",
			candidates[i].id, candidates[i].adj, generation))
		delete(ss.Species, candidates[i].id)
	}
}

// File: generate.go
// Role: corpus generation — builds an (F1, F2) factor pair of a requested
// arity, potential-table shape, and target exchangeability outcome.
package instance

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/deft/factor"
)

// Generate builds an (F1, F2) pair per the resolved (n, iseq, kind, p, seed)
// parameters. F1 and F2 start from the same potential table (so they are
// exchangeable by construction); when iseq=false, one uniformly random
// entry of F2's table is perturbed to original+2^n before either factor's
// argument order is shuffled, producing a non-exchangeable pair. Both
// factors' argument order is independently, randomly permuted afterward
// regardless of iseq, matching the perturb-then-shuffle generation
// pipeline.
//
// Every random draw (mixed-kind generation, perturbation index, both
// shuffles) is made from its own RNG stream derived from seed, so Generate
// is a pure function of its Options: calling it twice with the same
// options reproduces the same pair exactly.
func Generate(opts ...Option) (*factor.Factor, *factor.Factor, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.n < 1 {
		return nil, nil, ErrInvalidArity
	}
	switch cfg.kind {
	case KindAsc, KindSame, KindMixed:
	default:
		return nil, nil, ErrUnsupportedKind
	}

	mixedRNG := deriveRNG(cfg.seed, streamMixed)
	perturbRNG := deriveRNG(cfg.seed, streamPerturb)
	shuffleRNG1 := deriveRNG(cfg.seed, streamShuffleF1)
	shuffleRNG2 := deriveRNG(cfg.seed, streamShuffleF2)

	base := buildPotentials(cfg, mixedRNG)
	pot1 := append([]float64(nil), base...)
	pot2 := append([]float64(nil), base...)

	if !cfg.iseq {
		idx := perturbRNG.Intn(len(pot2))
		pot2[idx] += float64(uint(1) << uint(cfg.n))
	}

	f1, err := buildFactor("F1", cfg.n, 0, pot1)
	if err != nil {
		return nil, nil, err
	}
	f2, err := buildFactor("F2", cfg.n, cfg.n, pot2)
	if err != nil {
		return nil, nil, err
	}

	if err := f1.PermuteInPlace(permRange(cfg.n, shuffleRNG1)); err != nil {
		return nil, nil, err
	}
	if err := f2.PermuteInPlace(permRange(cfg.n, shuffleRNG2)); err != nil {
		return nil, nil, err
	}

	return f1, f2, nil
}

// buildPotentials renders the canonical-order potential sequence for the
// requested kind:
//   - KindAsc: 1, 2, ..., 2^n.
//   - KindSame: cfg.sameValue repeated 2^n times.
//   - KindMixed: each entry is 1 with probability p, otherwise the next
//     value of a running counter; drawn from rng so the sequence is
//     reproducible given a seed.
func buildPotentials(cfg config, rng *rand.Rand) []float64 {
	total := 1 << uint(cfg.n)
	out := make([]float64, total)

	switch cfg.kind {
	case KindAsc:
		for i := range out {
			out[i] = float64(i + 1)
		}
	case KindSame:
		for i := range out {
			out[i] = cfg.sameValue
		}
	case KindMixed:
		counter := 0
		for i := range out {
			if rng.Float64() < cfg.p {
				out[i] = 1
			} else {
				counter++
				out[i] = float64(counter)
			}
		}
	}

	return out
}

// buildFactor assigns potentials positionally to factor.Assignments(n) and
// constructs a Factor named name with args "R{nameOffset+1}".."R{nameOffset+n}".
func buildFactor(name string, n, nameOffset int, potentials []float64) (*factor.Factor, error) {
	args := make([]factor.DRV, n)
	for i := 0; i < n; i++ {
		args[i] = factor.DRV{Name: fmt.Sprintf("R%d", nameOffset+i+1)}
	}

	assignments := factor.Assignments(n)
	entries := make([]factor.Entry, len(assignments))
	for i, c := range assignments {
		entries[i] = factor.Entry{Assignment: c, Potential: potentials[i]}
	}

	return factor.New(name, args, entries)
}

// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, weighted).
//
// Canonical model:
//   1) Shuffle ids 0..n-1. Attach every shuffled id (from the second on) to a
//      uniformly chosen earlier id: a random spanning tree, hence connected.
//   2) Shuffle every unordered pair {i,j} (i<j) not already linked and accept
//      each in turn unless an endpoint already sits at maxDegree, or accepting
//      it would push the count of maxDegree nodes above maxDegreeRatio·n.
//
// Contract:
//   - n < 1 clears the graph (no error).
//   - cfg.rng must be non-nil for n ≥ 1 (else ErrNeedRandSource).
//   - Weighted links take cfg.weightFn(cfg.rng); otherwise they are unweighted.
//   - The graph content is replaced in one step via core.Graph.Replace and the
//     id counter continues from n.
//
// Degree cap in the spanning tree:
//   - Step 1 draws its attachment point only among earlier nodes that can take
//     another link without breaking either bound. A tree always has a leaf,
//     and leaves are always eligible when maxDegree ≥ 3, so the draw never
//     fails. Both bounds therefore hold for every generated graph, not only
//     after the augmentation pass.
//
// Complexity:
//   - Time: O(n²) for candidate enumeration, O(n²) for tree attachment draws.
//   - Space: O(n²) candidate list.
//
// Determinism:
//   - Fixed RNG call order (shuffle, per-tree-link draw + weight, shuffle,
//     per-accepted-link weight) makes outcomes reproducible for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/searchlab/core"
)

// pair is an unordered candidate link with lo < hi.
type pair struct{ lo, hi int }

// RandomConnected returns a Constructor that replaces g's content with a
// random connected graph over n nodes, see the file header for the model.
func RandomConnected(n int, weighted bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g == nil {
			return fmt.Errorf("%s: %w", MethodRandomConnected, core.ErrGraphNil)
		}
		if n < 1 {
			g.Clear()

			return nil
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomConnected, ErrNeedRandSource, "n=%d", n)
		}

		gen := &connectedGen{
			cfg:      cfg,
			n:        n,
			weighted: weighted,
			degree:   make([]int, n),
		}
		links := gen.spanningTree()
		links = gen.augment(links)

		if err := g.Replace(n, links); err != nil {
			return fmt.Errorf("%s: Replace: %w: %w", MethodRandomConnected, ErrConstructFailed, err)
		}

		return nil
	}
}

// connectedGen holds per-build state: degree counters and the number of
// nodes currently sitting at the degree cap.
type connectedGen struct {
	cfg      builderConfig
	n        int
	weighted bool
	degree   []int
	atCap    int
}

// weight draws the next link weight, or Unweighted.
func (cg *connectedGen) weight() core.Weight {
	if !cg.weighted {
		return core.Unweighted
	}

	return core.W(cg.cfg.weightFn(cg.cfg.rng))
}

// capAllows reports whether extra more nodes may reach the degree cap.
func (cg *connectedGen) capAllows(extra int) bool {
	return float64(cg.atCap+extra)/float64(cg.n) <= cg.cfg.maxDegreeRatio
}

// connect records a link between a and b and updates the degree bookkeeping.
func (cg *connectedGen) connect(links []core.Link, a, b int) []core.Link {
	links = append(links, core.Link{Source: a, Target: b, Weight: cg.weight()})
	for _, id := range [...]int{a, b} {
		cg.degree[id]++
		if cg.degree[id] == cg.cfg.maxDegree {
			cg.atCap++
		}
	}

	return links
}

// spanningTree attaches each shuffled id to an eligible earlier one.
func (cg *connectedGen) spanningTree() []core.Link {
	rng := cg.cfg.rng
	order := make([]int, cg.n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	links := make([]core.Link, 0, cg.n-1)
	eligible := make([]int, 0, cg.n)
	for i := 1; i < cg.n; i++ {
		eligible = eligible[:0]
		for _, id := range order[:i] {
			switch d := cg.degree[id]; {
			case d < cg.cfg.maxDegree-1:
				eligible = append(eligible, id)
			case d == cg.cfg.maxDegree-1 && cg.capAllows(1):
				eligible = append(eligible, id)
			}
		}
		src := eligible[rng.Intn(len(eligible))]
		links = cg.connect(links, src, order[i])
	}

	return links
}

// augment walks the shuffled non-tree pairs and accepts those that respect
// both degree bounds.
func (cg *connectedGen) augment(links []core.Link) []core.Link {
	linked := make(map[pair]struct{}, len(links))
	for _, l := range links {
		linked[orderPair(l.Source, l.Target)] = struct{}{}
	}

	candidates := make([]pair, 0, cg.n*(cg.n-1)/2)
	for i := 0; i < cg.n; i++ {
		for j := i + 1; j < cg.n; j++ {
			if _, ok := linked[pair{i, j}]; ok {
				continue
			}
			candidates = append(candidates, pair{i, j})
		}
	}
	cg.cfg.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	limit := cg.cfg.maxDegree
	for _, c := range candidates {
		if cg.degree[c.lo] >= limit || cg.degree[c.hi] >= limit {
			continue
		}
		inc := 0
		if cg.degree[c.lo] == limit-1 {
			inc++
		}
		if cg.degree[c.hi] == limit-1 {
			inc++
		}
		if !cg.capAllows(inc) {
			continue
		}
		links = cg.connect(links, c.lo, c.hi)
	}

	return links
}

func orderPair(a, b int) pair {
	if a > b {
		a, b = b, a
	}

	return pair{a, b}
}

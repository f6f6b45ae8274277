package prover

import "fmt"

// A Heuristic scores passive clauses; the saturation loop always selects a
// clause with the lowest score, breaking ties by clause identifier.
type Heuristic byte

const (
	// PreferEmpty scores a clause by its literal count, so the empty
	// clause wins immediately.
	PreferEmpty = Heuristic(iota)
	// Depth scores a clause by its derivation depth.
	Depth
	// DisjunctCount scores a clause by its literal count.
	DisjunctCount
	// SymbolCount scores a clause by its total symbol occurrences.
	SymbolCount
	// DisjunctCountPlusDepth adds literal count and derivation depth.
	DisjunctCountPlusDepth
	// SymbolCountPlusDepth adds symbol count and derivation depth.
	SymbolCountPlusDepth
)

// Heuristics lists all selectable heuristics, in declaration order.
func Heuristics() []Heuristic {
	return []Heuristic{
		PreferEmpty,
		Depth,
		DisjunctCount,
		SymbolCount,
		DisjunctCountPlusDepth,
		SymbolCountPlusDepth,
	}
}

// ParseHeuristic resolves a heuristic by its invocation name.
func ParseHeuristic(name string) (Heuristic, error) {
	for _, h := range Heuristics() {
		if h.String() == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown heuristic %q", name)
}

func (h Heuristic) String() string {
	switch h {
	case PreferEmpty:
		return "prefer_empty"
	case Depth:
		return "depth"
	case DisjunctCount:
		return "disjunct_count"
	case SymbolCount:
		return "symbol_count"
	case DisjunctCountPlusDepth:
		return "disjunct_count_plus_depth"
	case SymbolCountPlusDepth:
		return "symbol_count_plus_depth"
	default:
		panic("invalid heuristic")
	}
}

// score computes the priority of a clause from its cached metrics. Lower is
// better.
func (h Heuristic) score(c *Clause) int {
	switch h {
	case PreferEmpty:
		return c.Len()
	case Depth:
		return c.Depth
	case DisjunctCount:
		return c.Len()
	case SymbolCount:
		return c.SymCnt
	case DisjunctCountPlusDepth:
		return c.Len() + c.Depth
	case SymbolCountPlusDepth:
		return c.SymCnt + c.Depth
	default:
		panic("invalid heuristic")
	}
}

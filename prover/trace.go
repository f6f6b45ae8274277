package prover

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Provenance renders the derivation record of a clause: the rule alone for
// initial clauses, the rule with parent identifiers and unifier otherwise.
func (c *Clause) Provenance() string {
	if len(c.Parents) == 0 {
		return "[" + c.Rule + "]"
	}
	ids := make([]string, len(c.Parents))
	for i, id := range c.Parents {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("[%s %s %s]", c.Rule, strings.Join(ids, ","), c.Mgu)
}

// Derivation returns the clauses reachable from the empty clause through
// the provenance graph, in ascending identifier order. Parents always carry
// smaller identifiers than their children, so the result is a valid linear
// derivation ending in the empty clause. It returns nil when no empty
// clause was derived.
func (p *Prover) Derivation() []*Clause {
	if p.emptyID < 0 {
		return nil
	}
	reach := map[int]*Clause{}
	stack := []int{p.emptyID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := reach[id]; seen {
			continue
		}
		c, ok := p.all[id]
		if !ok {
			panic(fmt.Sprintf("provenance refers to unknown clause %d", id))
		}
		reach[id] = c
		stack = append(stack, c.Parents...)
	}
	out := make([]*Clause, 0, len(reach))
	for _, c := range reach {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// WriteDerivation prints a derivation, one clause per line, in the format
// "<id>: <literals> [<rule> <parent-ids> <sigma>]".
func WriteDerivation(w io.Writer, clauses []*Clause) error {
	for _, c := range clauses {
		if _, err := fmt.Fprintf(w, "%d: %s %s\n", c.ID, c, c.Provenance()); err != nil {
			return err
		}
	}
	return nil
}

package compiler

import (
	"fmt"
	"strings"

	"github.com/nlab-ml/nlab/nlab"
)

// EmitForward lowers the network's dependency graph into forward-pass
// statements. It trusts declaration order as execution order: the graph is
// a DAG expressed in topological order already, and any edge referencing an
// instance at or after its own position is rejected rather than reordered.
func EmitForward(net nlab.Network, cfg nlab.BackendConfig) ([]Stmt, error) {
	if len(net.Instances) == 0 {
		return nil, &Error{
			Kind:     EmptyGraph,
			Network:  net.ID,
			Instance: -1,
			Detail:   "network has no layer instances",
		}
	}

	var stmts []Stmt
	for i := range net.Instances {
		var edges []nlab.Edge
		if i < len(net.Graph) {
			edges = net.Graph[i]
		}

		// external inputs first in edge order, then internal ones
		var extArgs, intArgs []string
		for _, edge := range edges {
			if edge.External {
				extArgs = append(extArgs, externalInput)
				continue
			}
			if edge.Source < 0 || edge.Source >= i {
				return nil, &Error{
					Kind:     UnresolvedReference,
					Network:  net.ID,
					Instance: i,
					Detail:   fmt.Sprintf("edge references instance %d, which does not precede it", edge.Source),
				}
			}
			if edge.Activation != "" {
				activation := strings.ToLower(edge.Activation)
				syntax, ok := cfg.Activations[activation]
				if !ok {
					return nil, &Error{
						Kind:     UnknownActivation,
						Network:  net.ID,
						Instance: i,
						Detail:   fmt.Sprintf("no such activation %s", edge.Activation),
					}
				}
				// Rebinds the source output in place: a later consumer of
				// the same source sees the activated value.
				stmts = append(stmts, Activate{Source: edge.Source, Syntax: syntax})
			}
			intArgs = append(intArgs, outName(edge.Source))
		}

		stmts = append(stmts, Execute{Index: i, Args: append(extArgs, intArgs...)})
		stmts = append(stmts, Store{Index: i})
	}

	// the graph's sink is the last instance
	stmts = append(stmts, Return{Index: len(net.Instances) - 1})
	return stmts, nil
}

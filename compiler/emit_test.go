package compiler

import (
	"testing"

	"github.com/nlab-ml/nlab/nlab"

	"github.com/stretchr/testify/require"
)

func twoLayerNetwork(graph [][]nlab.Edge) nlab.Network {
	return nlab.Network{
		ID:      "net-1",
		Name:    "mlp",
		Backend: nlab.Pytorch,
		Instances: []nlab.LayerInstance{
			{Layer: "dense"},
			{Layer: "dense"},
		},
		Graph: graph,
	}
}

func TestEmitActivationEdge(t *testing.T) {
	net := twoLayerNetwork([][]nlab.Edge{
		{{External: true}},
		{{Source: 0, Activation: "relu"}},
	})
	stmts, err := EmitForward(net, nlab.Backends[nlab.Pytorch])
	require.NoError(t, err)
	require.Equal(t, []Stmt{
		Execute{Index: 0, Args: []string{"input"}},
		Store{Index: 0},
		Activate{Source: 0, Syntax: "nn.ReLU()"},
		Execute{Index: 1, Args: []string{"out_0"}},
		Store{Index: 1},
		Return{Index: 1},
	}, stmts)
}

func TestEmitExternalArgsFirst(t *testing.T) {
	net := twoLayerNetwork([][]nlab.Edge{
		{{External: true}},
		{{Source: 0}, {External: true}},
	})
	stmts, err := EmitForward(net, nlab.Backends[nlab.Pytorch])
	require.NoError(t, err)
	require.Equal(t, Execute{Index: 1, Args: []string{"input", "out_0"}}, stmts[2])
}

func TestEmitActivationCaseInsensitive(t *testing.T) {
	net := twoLayerNetwork([][]nlab.Edge{
		{{External: true}},
		{{Source: 0, Activation: "ReLU"}},
	})
	stmts, err := EmitForward(net, nlab.Backends[nlab.Pytorch])
	require.NoError(t, err)
	require.Contains(t, stmts, Activate{Source: 0, Syntax: "nn.ReLU()"})
}

// Activation application rebinds the source output in place, so when the
// same source feeds two activated edges the second consumer sees the
// already-activated value. This matches the reference system; see
// DESIGN.md for the discussion.
func TestEmitActivationRebindsInPlace(t *testing.T) {
	net := nlab.Network{
		ID:      "net-1",
		Name:    "fanout",
		Backend: nlab.Pytorch,
		Instances: []nlab.LayerInstance{
			{Layer: "dense"}, {Layer: "dense"}, {Layer: "dense"},
		},
		Graph: [][]nlab.Edge{
			{{External: true}},
			{{Source: 0, Activation: "relu"}},
			{{Source: 0, Activation: "tanh"}},
		},
	}
	stmts, err := EmitForward(net, nlab.Backends[nlab.Pytorch])
	require.NoError(t, err)
	require.Equal(t, []Stmt{
		Execute{Index: 0, Args: []string{"input"}},
		Store{Index: 0},
		Activate{Source: 0, Syntax: "nn.ReLU()"},
		Execute{Index: 1, Args: []string{"out_0"}},
		Store{Index: 1},
		Activate{Source: 0, Syntax: "nn.Tanh()"},
		Execute{Index: 2, Args: []string{"out_0"}},
		Store{Index: 2},
		Return{Index: 2},
	}, stmts)
}

func TestEmitSelfLoop(t *testing.T) {
	net := twoLayerNetwork([][]nlab.Edge{
		{{External: true}},
		{{Source: 1}},
	})
	_, err := EmitForward(net, nlab.Backends[nlab.Pytorch])
	require.Error(t, err)
	cerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, UnresolvedReference, cerr.Kind)
	require.Equal(t, 1, cerr.Instance)
}

func TestEmitForwardReference(t *testing.T) {
	net := twoLayerNetwork([][]nlab.Edge{
		{{Source: 1}},
		{{External: true}},
	})
	_, err := EmitForward(net, nlab.Backends[nlab.Pytorch])
	require.Error(t, err)
	cerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, UnresolvedReference, cerr.Kind)
	require.Equal(t, 0, cerr.Instance)
}

func TestEmitUnknownActivation(t *testing.T) {
	net := twoLayerNetwork([][]nlab.Edge{
		{{External: true}},
		{{Source: 0, Activation: "swish"}},
	})
	_, err := EmitForward(net, nlab.Backends[nlab.Pytorch])
	require.Error(t, err)
	cerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, UnknownActivation, cerr.Kind)
	require.Equal(t, 1, cerr.Instance)
}

func TestEmitEmptyGraph(t *testing.T) {
	net := nlab.Network{ID: "net-1", Name: "empty", Backend: nlab.Pytorch}
	_, err := EmitForward(net, nlab.Backends[nlab.Pytorch])
	require.Error(t, err)
	cerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, EmptyGraph, cerr.Kind)
}

func TestEmitReturnsLastInstance(t *testing.T) {
	net := twoLayerNetwork([][]nlab.Edge{
		{{External: true}},
		{{Source: 0}},
	})
	stmts, err := EmitForward(net, nlab.Backends[nlab.Pytorch])
	require.NoError(t, err)
	require.Equal(t, Return{Index: 1}, stmts[len(stmts)-1])
}

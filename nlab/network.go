package nlab

import (
	"fmt"
	"strconv"
	"strings"
)

// Param is one constructor parameter binding.
// Params are an ordered sequence, not a map, so that a definition always
// binds in the same order and recompiling yields byte-identical output.
type Param struct {
	Name  string
	Value string
}

// LayerInstance is one instantiation of a layer template.
type LayerInstance struct {
	// Name of the referenced LayerTemplate.
	Layer  string
	Params []Param
}

// Edge is one input to a layer instance: either the network's external
// input, or the output of an earlier instance, optionally passed through
// an activation first.
type Edge struct {
	External   bool
	Source     int
	Activation string
}

func (e Edge) String() string {
	if e.External {
		return "x"
	}
	if e.Activation == "" {
		return strconv.Itoa(e.Source)
	}
	return fmt.Sprintf("%d,%s", e.Source, e.Activation)
}

func ParseEdge(s string) Edge {
	if s == "x" {
		return Edge{External: true}
	}
	parts := strings.SplitN(s, ",", 2)
	e := Edge{Source: ParseInt(parts[0])}
	if len(parts) == 2 {
		e.Activation = parts[1]
	}
	return e
}

// EncodeGraph serializes a graph for storage: one entry per instance,
// entries joined by "|", edges within an entry joined by ";".
func EncodeGraph(graph [][]Edge) string {
	entries := make([]string, len(graph))
	for i, edges := range graph {
		var strs []string
		for _, e := range edges {
			strs = append(strs, e.String())
		}
		entries[i] = strings.Join(strs, ";")
	}
	return strings.Join(entries, "|")
}

func ParseGraph(s string) [][]Edge {
	if s == "" {
		return [][]Edge{}
	}
	entries := strings.Split(s, "|")
	graph := make([][]Edge, len(entries))
	for i, entry := range entries {
		graph[i] = []Edge{}
		if entry == "" {
			continue
		}
		for _, part := range strings.Split(entry, ";") {
			graph[i] = append(graph[i], ParseEdge(part))
		}
	}
	return graph
}

// Network is a declarative network definition: an ordered sequence of
// layer instances plus one list of input edges per instance, targeting a
// single backend. Declaration order is execution order, so edges may only
// reference earlier instances.
type Network struct {
	ID      string
	Name    string
	Backend string

	Instances []LayerInstance
	Graph     [][]Edge

	// Opaque references consumed by training code, not by the compiler.
	Loss    string
	Weights string
}

func (net Network) String() string {
	return fmt.Sprintf("%s: <%s> %d layers", net.Name, net.Backend, len(net.Instances))
}

// Package compiler turns a declarative network definition into a
// backend-native program: a class declaring each layer instance, a forward
// routine executing them in declaration order with activations applied on
// the edges that request them, and a terminal statement returning the
// graph's sink output.
package compiler

import (
	"fmt"
	"strings"

	"github.com/nlab-ml/nlab/nlab"
)

// Registry is the read-only layer template lookup the compiler binds
// against. Lookups happen at compile time, not definition time: a network
// may be defined before all of its templates exist, and every recompile
// re-validates against the current registry contents.
type Registry interface {
	GetLayerTemplate(name string) *nlab.LayerTemplate
}

// StoreProvider supplies the store-hook expression declared alongside each
// layer. Store behavior is an open slot; the default binds a no-op.
type StoreProvider interface {
	StoreExpr(tmpl *nlab.LayerTemplate, backend string) string
}

type noopStore struct{}

func (noopStore) StoreExpr(tmpl *nlab.LayerTemplate, backend string) string {
	return "lambda output: None"
}

type Compiler struct {
	registry Registry
	backends map[string]nlab.BackendConfig
	store    StoreProvider
}

func New(registry Registry, backends map[string]nlab.BackendConfig) *Compiler {
	return &Compiler{
		registry: registry,
		backends: backends,
		store:    noopStore{},
	}
}

// SetStoreProvider overrides the default no-op store hook.
func (c *Compiler) SetStoreProvider(p StoreProvider) {
	c.store = p
}

// Compile synthesizes the backend program for net. It is a pure function
// of net and the registry contents: templates are resolved eagerly up
// front, all validation happens in memory, and no text is produced on any
// error, so callers can persist the result knowing it is complete.
func (c *Compiler) Compile(net nlab.Network) (string, error) {
	backend := strings.ToLower(net.Backend)
	cfg, ok := c.backends[backend]
	if !ok {
		return "", &Error{
			Kind:     UnsupportedBackend,
			Network:  net.ID,
			Instance: -1,
			Detail:   fmt.Sprintf("no such backend %s", net.Backend),
		}
	}

	// Resolve every template before generating anything. A compile pass
	// makes no external reads after this point.
	templates := make([]*nlab.LayerTemplate, len(net.Instances))
	for i, inst := range net.Instances {
		tmpl := c.registry.GetLayerTemplate(inst.Layer)
		if tmpl == nil {
			return "", &Error{
				Kind:     UnknownLayer,
				Network:  net.ID,
				Instance: i,
				Detail:   fmt.Sprintf("no such layer %s", inst.Layer),
			}
		}
		templates[i] = tmpl
	}

	decls := make([]Declare, len(net.Instances))
	for i, inst := range net.Instances {
		expr, err := Bind(templates[i], backend, inst.Params)
		if err != nil {
			if cerr, ok := err.(*Error); ok {
				cerr.Network = net.ID
				cerr.Instance = i
			}
			return "", err
		}
		decls[i] = Declare{
			Index:     i,
			Expr:      expr,
			StoreExpr: c.store.StoreExpr(templates[i], backend),
		}
	}

	forward, err := EmitForward(net, cfg)
	if err != nil {
		return "", err
	}

	return renderProgram(cfg, net.Name, decls, forward), nil
}

package nlab

import (
	"fmt"
	"strings"
)

// Backend identifiers.
const (
	Pytorch    = "pytorch"
	Tensorflow = "tensorflow"
	Pennylane  = "pennylane"
)

// BackendNames lists the backends in canonical order.
var BackendNames = []string{Pytorch, Tensorflow, Pennylane}

// BackendConfig is the code generation table for one backend.
type BackendConfig struct {
	// Import preamble emitted at the top of every generated program.
	Imports string
	// Base class for the generated network class.
	Module string
	// Activation name -> backend-native callable syntax.
	Activations map[string]string
}

// Backends maps backend identifiers to their code generation tables.
// It is fixed at startup; compile passes receive it as read-only
// configuration rather than reaching for global state.
var Backends = map[string]BackendConfig{
	Pytorch: {
		Imports: "import torch\nimport torch.nn as nn",
		Module:  "nn.Module",
		Activations: map[string]string{
			"relu":    "nn.ReLU()",
			"sigmoid": "nn.Sigmoid()",
			"tanh":    "nn.Tanh()",
			"softmax": "nn.Softmax(dim=1)",
		},
	},
	Tensorflow: {
		Imports: "import tensorflow as tf",
		Module:  "tf.Module",
		Activations: map[string]string{
			"relu":    "tf.nn.relu",
			"sigmoid": "tf.math.sigmoid",
			"tanh":    "tf.math.tanh",
			"softmax": "tf.nn.softmax",
		},
	},
	Pennylane: {
		Imports:     "import pennylane as qml\nfrom pennylane import numpy as np",
		Module:      "object",
		Activations: map[string]string{},
	},
}

// LayerTemplate is a reusable, named layer specification.
// Templates are immutable once created: a network definition references
// them by name and the compiler resolves that reference on every pass.
type LayerTemplate struct {
	ID   string
	Name string

	// Code snippet describing how to persist the layer's output.
	// Not interpreted by the compiler yet; see compiler.StoreProvider.
	Store string

	// Backend -> ordered list of accepted constructor parameter names.
	Parameters map[string][]string

	// Backend -> constructor callable syntax, e.g. "nn.Linear".
	Construct map[string]string
}

// SupportsBackend reports whether the template can be bound for backend.
// It needs both a constructor syntax and a parameter whitelist.
func (t LayerTemplate) SupportsBackend(backend string) bool {
	return t.Construct[backend] != "" && t.Parameters[backend] != nil
}

// Supports returns the backends this template can be bound for,
// in canonical order.
func (t LayerTemplate) Supports() []string {
	var backends []string
	for _, backend := range BackendNames {
		if t.SupportsBackend(backend) {
			backends = append(backends, backend)
		}
	}
	return backends
}

func (t LayerTemplate) String() string {
	var parts []string
	for _, backend := range t.Supports() {
		parts = append(parts, fmt.Sprintf("<%s> %d", backend, len(t.Parameters[backend])))
	}
	return fmt.Sprintf("%s: %s", t.Name, strings.Join(parts, " "))
}

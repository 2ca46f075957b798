package compiler

import (
	"fmt"
)

// Error kinds. All of them indicate a defective definition rather than a
// transient fault: retrying the same compile yields the same result.
const (
	// A referenced layer template has no binding for the network's backend.
	UnsupportedBackend = "unsupported-backend"
	// An instance references a template name absent from the registry.
	UnknownLayer = "unknown-layer"
	// An edge names a source instance that does not precede it.
	UnresolvedReference = "unresolved-reference"
	// An edge names an activation absent from the backend's table.
	UnknownActivation = "unknown-activation"
	// The network has zero instances, so it has no defined output.
	EmptyGraph = "empty-graph"
)

type Error struct {
	Kind string
	// ID of the network whose definition is defective.
	Network string
	// Index of the offending layer instance, or -1 if the defect is not
	// tied to one instance.
	Instance int
	Detail   string
}

func (e *Error) Error() string {
	if e.Instance >= 0 {
		return fmt.Sprintf("%s: network %s: instance %d: %s", e.Kind, e.Network, e.Instance, e.Detail)
	}
	return fmt.Sprintf("%s: network %s: %s", e.Kind, e.Network, e.Detail)
}

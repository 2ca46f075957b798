package compiler

import (
	"fmt"
	"strings"

	"github.com/nlab-ml/nlab/nlab"
)

// Bind resolves the construction expression for one layer on one backend,
// e.g. Bind(linear, "pytorch", [in_features=4]) -> "nn.Linear(in_features=4)".
//
// Parameters not on the template's whitelist for that backend are silently
// dropped rather than rejected: a definition may over-specify parameters so
// that each backend takes only the ones it knows. Parameters bind in input
// order, which is fixed because params is a sequence.
func Bind(tmpl *nlab.LayerTemplate, backend string, params []nlab.Param) (string, error) {
	if !tmpl.SupportsBackend(backend) {
		return "", &Error{
			Kind:     UnsupportedBackend,
			Instance: -1,
			Detail:   fmt.Sprintf("layer %s has no %s binding", tmpl.Name, backend),
		}
	}

	allowed := make(map[string]bool)
	for _, name := range tmpl.Parameters[backend] {
		allowed[name] = true
	}

	var args []string
	for _, p := range params {
		if !allowed[p.Name] {
			continue
		}
		args = append(args, fmt.Sprintf("%s=%s", p.Name, p.Value))
	}
	return fmt.Sprintf("%s(%s)", tmpl.Construct[backend], strings.Join(args, ",")), nil
}

package compiler

import (
	"fmt"
	"strings"

	"github.com/nlab-ml/nlab/nlab"
)

// The renderer prints the assembled statements as Python source. Every
// supported backend is a Python environment; the backend-specific parts
// (imports, base class, constructor and activation syntax) were resolved
// before rendering, so this stage cannot fail.

// externalInput is the argument name bound to the network's overall input.
const externalInput = "input"

func outName(i int) string {
	return fmt.Sprintf("out_%d", i)
}

func layerName(i int) string {
	return fmt.Sprintf("self.layer_%d", i)
}

func storeName(i int) string {
	return fmt.Sprintf("self.layer_%d_store", i)
}

func renderStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case Activate:
		return fmt.Sprintf("%s = %s(%s)", outName(s.Source), s.Syntax, outName(s.Source))
	case Execute:
		return fmt.Sprintf("%s = %s(%s)", outName(s.Index), layerName(s.Index), strings.Join(s.Args, ","))
	case Store:
		return fmt.Sprintf("%s(%s)", storeName(s.Index), outName(s.Index))
	case Return:
		return fmt.Sprintf("return %s", outName(s.Index))
	}
	panic(fmt.Errorf("cannot render statement %T", stmt))
}

// renderProgram prints the full program: imports, the network class with
// its declaration block and forward routine, and the training and testing
// placeholder sections, in that fixed order.
func renderProgram(cfg nlab.BackendConfig, name string, decls []Declare, forward []Stmt) string {
	var b strings.Builder
	b.WriteString(cfg.Imports)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "class %s(%s):\n", name, cfg.Module)
	b.WriteString("\tdef __init__(self):\n")
	b.WriteString("\t\tsuper().__init__()\n")
	for _, d := range decls {
		fmt.Fprintf(&b, "\t\t%s = %s\n", layerName(d.Index), d.Expr)
		fmt.Fprintf(&b, "\t\t%s = %s\n", storeName(d.Index), d.StoreExpr)
	}

	b.WriteString("\n\tdef forward(self, input):\n")
	for _, stmt := range forward {
		b.WriteString("\t\t")
		b.WriteString(renderStmt(stmt))
		b.WriteString("\n")
	}

	b.WriteString("\ndef train():\n\tpass\n")
	b.WriteString("\ndef test():\n\tpass\n")
	return b.String()
}

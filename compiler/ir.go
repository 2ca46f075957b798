package compiler

// Typed statements for the generated program. The emitter lowers a network
// definition into these, and the renderer prints them, so graph semantics
// can be tested without depending on textual formatting.

type Stmt interface {
	isStmt()
}

// Declare binds instance Index's constructor expression in the generated
// class, along with its store hook.
type Declare struct {
	Index     int
	Expr      string
	StoreExpr string
}

// Activate rebinds instance Source's output through an activation, in
// place. Syntax is the backend-native callable, resolved at emit time so
// that rendering cannot fail.
type Activate struct {
	Source int
	Syntax string
}

// Execute calls instance Index's layer on the already-bound argument names.
type Execute struct {
	Index int
	Args  []string
}

// Store invokes instance Index's store hook on its own output.
type Store struct {
	Index int
}

// Return emits the terminal output statement.
type Return struct {
	Index int
}

func (Declare) isStmt()  {}
func (Activate) isStmt() {}
func (Execute) isStmt()  {}
func (Store) isStmt()    {}
func (Return) isStmt()   {}

package nlab

import (
	"time"
)

// Job records one compile pass over a network definition.
type Job struct {
	ID int
	// Name of the network the pass ran over.
	Name string
	Op   string
	// Network ID.
	Metadata  string
	StartTime time.Time

	// If the pass succeeds, Done=true and Error="".
	// If it fails, then Done=true and Error is set.
	// If Done=false it implies the pass is still running.
	Done  bool
	Error string
}

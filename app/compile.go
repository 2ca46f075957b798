package app

import (
	"github.com/nlab-ml/nlab/compiler"
	"github.com/nlab-ml/nlab/nlab"

	"log"
	"os"
	"path/filepath"

	sync "github.com/sasha-s/go-deadlock"
)

// Compile passes for the same network must not interleave writes to its
// artifact, so each network ID gets its own lock. Passes over different
// networks share nothing mutable and run in parallel.
var compileLocks = make(map[string]*sync.Mutex)
var compileMu sync.Mutex

func networkLock(id string) *sync.Mutex {
	compileMu.Lock()
	defer compileMu.Unlock()
	if compileLocks[id] == nil {
		compileLocks[id] = new(sync.Mutex)
	}
	return compileLocks[id]
}

// layerRegistry adapts the layers table to the compiler's read-only
// template lookup.
type layerRegistry struct{}

func (layerRegistry) GetLayerTemplate(name string) *nlab.LayerTemplate {
	layer := GetLayerByName(name)
	if layer == nil {
		return nil
	}
	return &layer.LayerTemplate
}

// ProgramPath is where the network's compiled program is persisted.
func (network *DBNetwork) ProgramPath() string {
	return filepath.Join(Config.DataDir, "networks", network.ID+".py")
}

// Compile runs one full compile pass over the network and persists the
// resulting program. The pass is validated entirely in memory first: on
// any error nothing is written and a previously compiled program is left
// untouched. Every pass is recorded as a job.
func (network *DBNetwork) Compile() (*DBJob, error) {
	mu := networkLock(network.ID)
	mu.Lock()
	defer mu.Unlock()

	job := NewJob(network.Name, "compile", network.ID)

	c := compiler.New(layerRegistry{}, nlab.Backends)
	program, err := c.Compile(network.Network)
	if err != nil {
		log.Printf("[compile %s] error: %v", network.Name, err)
		job.SetDone(err.Error())
		return job, err
	}

	if err := writeProgram(network.ProgramPath(), program); err != nil {
		log.Printf("[compile %s] write error: %v", network.Name, err)
		job.SetDone(err.Error())
		return job, err
	}

	log.Printf("[compile %s] wrote %d bytes to %s", network.Name, len(program), network.ProgramPath())
	job.SetDone("")
	return job, nil
}

// writeProgram wholesale-replaces the artifact at path. The program is
// staged in a temporary file and renamed into place, so a concurrent
// reader sees either the previous program or the new one, never a partial
// write.
func writeProgram(path string, program string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".compile-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(program); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteProgramReplacesWholesale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "networks", "net-1.py")

	if err := writeProgram(path, "first program\n"); err != nil {
		t.Fatalf("writeProgram: %v", err)
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(bytes) != "first program\n" {
		t.Errorf("artifact = %q; want first program", string(bytes))
	}

	// a shorter program must fully replace the longer one
	if err := writeProgram(path, "second\n"); err != nil {
		t.Fatalf("writeProgram: %v", err)
	}
	bytes, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(bytes) != "second\n" {
		t.Errorf("artifact = %q; want second", string(bytes))
	}

	// staging files must not accumulate next to the artifact
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("artifact directory has %d entries; want 1", len(entries))
	}
}

func TestNetworkLockIsPerNetwork(t *testing.T) {
	a := networkLock("net-a")
	b := networkLock("net-b")
	if a == b {
		t.Errorf("different networks should get different locks")
	}
	if networkLock("net-a") != a {
		t.Errorf("same network should get the same lock")
	}
}

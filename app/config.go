package app

// Global config object, set by main.go
var Config struct {
	// Directory holding the sqlite database and compiled network programs.
	DataDir string
}

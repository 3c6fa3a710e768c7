// Package logging provides structured file logging for holiday-explorer.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/holiday-explorer/internal/config"
)

const defaultMaxFiles = 10

// Config controls the file logger. Command and PID end up in the file name
// and on every record.
type Config struct {
	Enabled  bool
	Level    string
	MaxFiles int
	Command  string
	PID      int
}

// FromGlobalConfig reads the logging_* keys. The debug flag wins over
// logging_level, and quiet raises the floor to error.
func FromGlobalConfig() Config {
	return Config{
		Enabled:  config.GetBool("logging_enabled", false),
		Level:    levelFromFlags(config.Get("logging_level", "info")),
		MaxFiles: config.GetInt("logging_max_files", defaultMaxFiles),
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

func levelFromFlags(configured string) string {
	if config.GetBool("debug", false) {
		return "debug"
	}
	if config.GetBool("quiet", false) {
		return "error"
	}
	return configured
}

// LogDir picks the first writable log directory: {state_dir}/logs when
// state_dir is set, then {tmp}/holiday-explorer/logs.
func LogDir() (string, error) {
	var candidates []string
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		candidates = append(candidates, filepath.Join(stateDir, "logs"))
	}
	candidates = append(candidates, filepath.Join(os.TempDir(), "holiday-explorer", "logs"))

	var lastErr error
	for _, dir := range candidates {
		if lastErr = ensureWritable(dir); lastErr == nil {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no writable log directory: %w", lastErr)
}

func ensureWritable(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".write-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// Package logging writes client diagnostics to a log file. The TUI owns
// the terminal, so nothing may be printed to stdout or stderr while it
// runs.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFile = "storefront.log"

var (
	mu      sync.Mutex
	logPath = defaultLogFile
)

// Configure sets the log destination. Empty values fall back to the
// default path. Directories are created automatically when missing.
func Configure(path string) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultLogFile
	}
	if dir := filepath.Dir(trimmed); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	mu.Lock()
	logPath = trimmed
	mu.Unlock()
}

// Printf appends a formatted entry to the log file.
func Printf(format string, args ...any) {
	write(fmt.Sprintf(format, args...))
}

// Error appends an error entry; nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	write(err.Error())
}

func write(line string) {
	mu.Lock()
	path := logPath
	mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	logger := log.New(f, "", log.LstdFlags)
	logger.Println(line)
}

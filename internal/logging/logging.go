// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	debug   bool
)

// Init routes the standard logger to stderr and, when logPath is set, to an
// append-mode log file. Stdout stays reserved for rendered results.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close detaches the log file and restores stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// SetDebug toggles LogDebug output.
func SetDebug(enabled bool) {
	mu.Lock()
	debug = enabled
	mu.Unlock()
}

func debugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogMetricsEvent logs a message tagged as coming from the metric engines.
func LogMetricsEvent(format string, args ...any) {
	log.Println("[METRICS] " + fmt.Sprintf(format, args...))
}

// LogDebug logs only when debug output is enabled.
func LogDebug(format string, args ...any) {
	if !debugEnabled() {
		return
	}
	log.Println("[DEBUG] " + fmt.Sprintf(format, args...))
}

// LogComputation records one metric computation and the size of its result.
func LogComputation(metric, test, bound string, rows int) {
	log.Println(buildComputationMessage(metric, test, bound, rows))
}

func buildComputationMessage(metric, test, bound string, rows int) string {
	name := strings.TrimSpace(metric)
	if name != "" {
		name = strings.ToUpper(name)
	}
	testValue := strings.TrimSpace(test)
	if testValue == "" {
		testValue = "all"
	}
	boundValue := strings.TrimSpace(bound)
	if boundValue == "" {
		boundValue = "default"
	}
	parts := []string{fmt.Sprintf("[%s]", name)}
	parts = append(parts, fmt.Sprintf("test=%s", testValue))
	parts = append(parts, fmt.Sprintf("bound=%s", boundValue))
	parts = append(parts, fmt.Sprintf("rows=%d", rows))
	return strings.Join(parts, " ")
}

package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode bool

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		debugMode = false
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", filename, err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	// Bubble Tea writes its own logs to the same file.
	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bubbletea log file %q: %w", filename, err)
	}
	debugMode = true

	cleanup = func() {
		debugMode = false
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// SetOutput points the logger at w. Tests use it to capture output.
func SetOutput(w io.Writer) {
	debugMode = w != io.Discard
	log.SetOutput(w)
}

// IsDebugMode reports whether a log file is attached.
func IsDebugMode() bool { return debugMode }

func Debug(v ...any) {
	if debugMode {
		output("DEBUG", fmt.Sprint(v...))
	}
}

func Debugf(format string, v ...any) {
	if debugMode {
		output("DEBUG", fmt.Sprintf(format, v...))
	}
}

func Infof(format string, v ...any) {
	output("INFO", fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...any) {
	output("WARN", fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...any) {
	output("ERROR", fmt.Sprintf(format, v...))
}

func output(level, msg string) {
	// calldepth 3: output <- Xf <- caller
	_ = log.Output(3, level+" "+msg)
}

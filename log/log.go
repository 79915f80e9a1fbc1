package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var logFileName = filepath.Join(os.TempDir(), "prismdash.log")

// SessionID identifies one dashboard run; it is stamped into inspect
// snapshots so output from concurrent runs can be told apart.
var SessionID = uuid.NewString()

var globalLogFile *os.File

// Loggers default to io.Discard so library code and tests can log without
// calling Initialize first.
var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

// Initialize opens the log file and wires the shared loggers to it. The TUI
// owns the terminal, so nothing may write to stdout/stderr while it runs.
// Call once at startup; defer Close.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("could not open log file: %v", err)
	}

	InfoLog = log.New(f, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	globalLogFile = f
}

// Close closes the log file. If nothing was written the file is removed so a
// clean run leaves no debris in the temp dir; otherwise the location is
// printed since the terminal is ours again by the time Close runs.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil

	if stat, err := os.Stat(logFileName); err == nil {
		if stat.Size() == 0 {
			_ = os.Remove(logFileName)
		} else {
			fmt.Println("logs written to " + logFileName)
		}
	}
}

package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// debugLogf appends a timestamped line to the file named by RTNT_DEBUG_LOG.
// A no-op unless the user provided a log path; the program owns the terminal,
// so this is the only logging channel it has.
func debugLogf(format string, args ...any) {
	path := strings.TrimSpace(os.Getenv("RTNT_DEBUG_LOG"))
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

//go:build debug

package sweep

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[tessellate DEBUG] ", log.LstdFlags)

// logDebugf logs a trace message. Compiled in only when built with
// -tags debug, mirroring the teacher's logDebugf gating in log_debug.go.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

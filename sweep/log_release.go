//go:build !debug

package sweep

// logDebugf is a no-op in the default build; see log_debug.go for the
// -tags debug variant.
func logDebugf(format string, v ...interface{}) {}

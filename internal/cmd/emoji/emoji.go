// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

const (
	// Success marks a completed change: added, edited, removed, activated.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Warning marks a change that completed with a problem, such as a
	// removal whose stored file could not be deleted.
	Warning = "!"

	// Info marks informational lines.
	Info = "i"
)

// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Stack Geometry - these keys govern the fixed capacity shared by stacks and input buffers.
const (
	StackCapacity = "stack.capacity"
)

// Console Input - these keys define how sentinel-terminated input is collected.
const (
	InputSentinel       = "input.sentinel"
	InputIgnoreNewlines = "input.ignore_newlines"
)

// Result Rendering - these keys control how verdicts are printed.
const (
	OutputJson = "output.json"
)

// Iconography - these keys manage the visual rendering of diagnostic symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern help rendering and diagnostics.
const (
	CliColored = "cli.colored"
)

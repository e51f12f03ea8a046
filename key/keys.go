// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Demonstration - these keys shape the canned walkthrough run by "lifo demo".
const (
	DemoValues = "demo.values"
)

// Expression Scripting - these keys govern the Lua states that evaluate predicates, selectors and comparators.
const (
	ScriptPreloadLibs = "script.preload_libs"
)

// Query Memory - these keys configure the persistence of evaluated expressions and their suggestions.
const (
	QueryRemember        = "query.remember"
	QueryShowSuggestions = "query.show_suggestions"
)

// Output Rendering - these keys define how stacks are printed in plain-text mode.
const (
	OutputSeparator = "output.separator"
)

// Terminal User Interface (TUI) - these keys define the interactive session's styling and logic.
const (
	TUIPrompt      = "tui.prompt"
	TUIShowIndices = "tui.show_indices"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)

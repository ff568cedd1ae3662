package ui

// DisplayConfig holds configuration for UI rendering
type DisplayConfig struct {
	// Truncation limits
	MaxTitleLength int // table title column; 0 derives it from the terminal width

	// Display lengths
	DefaultTerminalWidth int
	MinTitleLength       int
}

// DefaultConfig returns the default display configuration
func DefaultConfig() DisplayConfig {
	return DisplayConfig{
		MaxTitleLength:       0,
		DefaultTerminalWidth: 120,
		MinTitleLength:       20,
	}
}

// Global display configuration (can be overridden)
var Display = DefaultConfig()

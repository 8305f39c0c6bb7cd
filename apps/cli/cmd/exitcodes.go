package cmd

// Exit codes for respec CLI
const (
	// ExitSuccess indicates every example passed
	ExitSuccess = 0

	// ExitExampleFailure indicates one or more examples failed
	ExitExampleFailure = 1

	// ExitParseError indicates a report parsing or validation error
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

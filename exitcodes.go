package main

// Exit codes
const (
	ExitSuccess         = 0 // Success
	ExitError           = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError     = 2 // Invalid configuration
	ExitDataError       = 3 // Dataset missing, unreadable or empty after cleaning
	ExitUnknownCategory = 4 // Query value outside a column's vocabulary
	ExitInvalidK        = 5 // Neighbour count below 1
	ExitInvalidBudget   = 6 // Query budget is NaN or infinite
)

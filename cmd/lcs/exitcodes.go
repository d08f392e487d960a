package main

// Exit codes shared by all commands
const (
	ExitSuccess         = 0 // Success, or usage printed for a wrong argument count
	ExitError           = 1 // General error (invalid flags, runtime failure)
	ExitConfigError     = 2 // Configuration error (ontology file not found, bad config value)
	ExitDataError       = 3 // Data error (malformed ontology, finders disagree)
	ExitConceptNotFound = 4 // Named concept is not in the ontology
	ExitIndexNotFound   = 5 // SQLite index missing or empty
)

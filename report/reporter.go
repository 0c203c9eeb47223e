package report

import "sync"

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during translation.  The reporter respects the set log
// level and is synchronized: its methods can be safely called from multiple
// project-indexing threads.
type Reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors reported so far.
	errorCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages (default).
)

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global reporter to the given log level.  If the
// reporter has already been initialized, this function does nothing.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{
			m:        &sync.Mutex{},
			logLevel: logLevel,
		}
	}
}

// reporter returns the global reporter, initializing it to the default log
// level if no explicit initialization has happened yet.
func reporter() *Reporter {
	if rep == nil {
		InitReporter(LogLevelVerbose)
	}

	return rep
}

// ShouldProceed indicates whether or not there have been any non-fatal errors
// that should cause translation to stop at the current phase.
func ShouldProceed() bool {
	return reporter().errorCount == 0
}

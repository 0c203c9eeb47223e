package report

import (
	"fmt"
	"os"
)

// ReportModuleError reports an error resolving a module or library.
func ReportModuleError(modName string, msg string, args ...interface{}) {
	r := reporter()
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.logLevel >= LogLevelError {
		displayModuleMessage("error", modName, fmt.Sprintf(msg, args...))
	}
}

// ReportModuleWarning reports a warning from resolving a module or library.
func ReportModuleWarning(modName string, msg string, args ...interface{}) {
	r := reporter()
	r.m.Lock()
	defer r.m.Unlock()

	if r.logLevel >= LogLevelWarn {
		displayModuleMessage("warning", modName, fmt.Sprintf(msg, args...))
	}
}

// ReportStdError reports a standard Go error that occurred while interacting
// with an external collaborator.  The error is displayed unchanged.
func ReportStdError(tag string, err error) {
	r := reporter()
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.logLevel >= LogLevelError {
		displayStdError(tag, err)
	}
}

// ReportFatal reports a fatal error and exits the program.  It also
// automatically formats error messages as necessary.
func ReportFatal(msg string, args ...interface{}) {
	displayFatal(fmt.Sprintf(msg, args...))
	os.Exit(1)
}

// ReportICE reports an internal compiler error: a violation of one of the
// translation pipeline's own invariants.  These are programming errors, not
// user errors, so the whole translation is aborted by panicking with the
// formatted message.
func ReportICE(msg string, args ...interface{}) {
	panic(fmt.Sprintf("internal compiler error: %s", fmt.Sprintf(msg, args...)))
}

// -----------------------------------------------------------------------------
// Below are the "aesthetic" reporting functions that only run if the log level
// is verbose.  These provide additional information to make the tool friendly.

// DisplayInfoMessage prints a tagged informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	r := reporter()
	r.m.Lock()
	defer r.m.Unlock()

	if r.logLevel == LogLevelVerbose {
		displayInfoMessage(tag, msg)
	}
}

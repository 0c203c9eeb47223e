// Package cmd is the top-level driver package for the kestrelc tool: it
// parses command-line arguments and runs the library inspection commands.
package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"kestrelc/common"
	"kestrelc/report"
)

// Execute is the main entry point for the `kestrelc` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("kestrelc", "kestrelc is a tool for inspecting Kestrel build artifacts", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	libCmd := cli.AddSubcommand("lib", "inspect prebuilt libraries", true)

	listCmd := libCmd.AddSubcommand("list", "list the library roots under a directory", true)
	listCmd.AddPrimaryArg("search-path", "the directory to search for library roots", true)
	listCmd.AddStringArg("language-version", "lv", "the language version to check compatibility against", false)

	pkgsCmd := libCmd.AddSubcommand("packages", "list the packages a library declares", true)
	pkgsCmd.AddPrimaryArg("library-path", "the path to the library root", true)

	cli.AddSubcommand("version", "print the kestrelc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	report.InitReporter(logLevelFromArg(result.Arguments["loglevel"].(string)))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "lib":
		execLibCommand(subResult)
	case "version":
		report.DisplayInfoMessage("Kestrel Version", common.KestrelVersion)
	}
}

// logLevelFromArg converts a log level argument into an enumerated log level.
func logLevelFromArg(arg string) int {
	switch arg {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}

package scope

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/resultassert/resultassert/framework"
	"github.com/resultassert/resultassert/framework/helpers"
)

var consoleCheckErrorColor = color.New(color.FgYellow)              //nolint:gochecknoglobals
var consoleCheckFailedColor = color.New(color.FgRed)                //nolint:gochecknoglobals
var consoleCheckSkippedColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals
var consoleDebugOutputColor = color.New(color.Faint)                //nolint:gochecknoglobals
var allChecksPassedColor = color.New(color.FgGreen)                 //nolint:gochecknoglobals

// Logger receives status information about each check as a Run progresses.
type Logger interface {
	CheckStarted(id ID)
	CheckError(id ID, err error)
	CheckFinished(id ID, result CheckResult, debugOutput framework.CapturedOutput)
	CheckSkipped(id ID, reason string)
}

type nullLogger struct{}

func (n nullLogger) CheckStarted(ID)                                         {}
func (n nullLogger) CheckError(ID, error)                                    {}
func (n nullLogger) CheckFinished(ID, CheckResult, framework.CapturedOutput) {}
func (n nullLogger) CheckSkipped(ID, string)                                 {}

// ConsoleLogger writes check status to standard output, using colors if the terminal supports them.
type ConsoleLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c ConsoleLogger) CheckStarted(id ID) {
	fmt.Printf("[%s]\n", id)
}

func (c ConsoleLogger) CheckError(id ID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		_, _ = consoleCheckErrorColor.Printf("  %s\n", line)
	}
}

func (c ConsoleLogger) CheckFinished(id ID, result CheckResult, debugOutput framework.CapturedOutput) {
	failed := result.Failed()
	if failed {
		_, _ = consoleCheckFailedColor.Printf("  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		_, _ = consoleDebugOutputColor.Println(debugOutput.ToString("    DEBUG "))
	}
}

func (c ConsoleLogger) CheckSkipped(id ID, reason string) {
	_, _ = consoleCheckSkippedColor.Printf("  SKIPPED: %s%s\n", id, helpers.IfElse(reason == "", "", " ("+reason+")"))
}

// MultiLogger passes every event to each of its loggers in turn.
type MultiLogger []Logger

func (m MultiLogger) CheckStarted(id ID) {
	for _, l := range m {
		l.CheckStarted(id)
	}
}

func (m MultiLogger) CheckError(id ID, err error) {
	for _, l := range m {
		l.CheckError(id, err)
	}
}

func (m MultiLogger) CheckFinished(id ID, result CheckResult, debugOutput framework.CapturedOutput) {
	for _, l := range m {
		l.CheckFinished(id, result, debugOutput)
	}
}

func (m MultiLogger) CheckSkipped(id ID, reason string) {
	for _, l := range m {
		l.CheckSkipped(id, reason)
	}
}

// PrintResults writes a summary of a Run: a success line to standard output, or the list of
// failed checks to standard error.
func PrintResults(results Results) {
	printResults(os.Stdout, os.Stderr, results)
}

func printResults(out, errOut io.Writer, results Results) {
	if results.OK() {
		_, _ = allChecksPassedColor.Fprintln(out, "All checks passed")
		return
	}
	_, _ = consoleCheckFailedColor.Fprintf(errOut, "FAILED CHECKS (%d):\n", len(results.Failures))
	for _, f := range results.Failures {
		_, _ = consoleCheckFailedColor.Fprintf(errOut, "  * %s%s\n", f.ID, failureLocation(f))
	}
}

// failureLocation names where the first error of a failed check was reported, if known.
func failureLocation(r CheckResult) string {
	for _, err := range r.Errors {
		var ce CheckError
		if errors.As(err, &ce) && ce.Location() != "" {
			return " (" + ce.Location() + ")"
		}
	}
	return ""
}

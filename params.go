package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/resultassert/resultassert/framework/scope"
)

type commandParams struct {
	targetURL      string
	suitePaths     []string
	timeout        time.Duration
	filters        scope.RegexFilters
	debug          bool
	debugAll       bool
	jUnitFile      string
	recordFailures string
	skipFile       string
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s -url <target URL> [options] <suite file or directory>...\n", args[0])
		fs.PrintDefaults()
	}
	fs.StringVar(&c.targetURL, "url", "", "base URL of the application under test")
	fs.DurationVar(&c.timeout, "timeout", defaultTimeout, "how long to wait for the target to start, and for each request")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select checks to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select checks not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed checks")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all checks")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write the IDs of failed checks to the specified path")
	fs.StringVar(&c.skipFile, "skip-from", "", "skip the checks listed in the specified file, as written by -record-failures")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.targetURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		return false
	}
	c.suitePaths = fs.Args()
	if len(c.suitePaths) == 0 {
		fmt.Fprintln(os.Stderr, "at least one suite file or directory is required")
		fs.Usage()
		return false
	}
	return true
}

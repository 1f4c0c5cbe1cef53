package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/resultassert/resultassert/framework"
	"github.com/resultassert/resultassert/framework/harness"
	"github.com/resultassert/resultassert/framework/scope"
	"github.com/resultassert/resultassert/suite"
)

const versionString = "1.0.0"

const defaultTimeout = time.Second * 10

func main() {
	fmt.Printf("resultcheck v%s\n", versionString)

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (*scope.Results, error) {
	if params.skipFile != "" {
		if err := loadSuppressions(&params); err != nil {
			return nil, err
		}
	}

	suites, err := suite.Load(params.suitePaths...)
	if err != nil {
		return nil, err
	}
	if len(suites) == 0 {
		return nil, fmt.Errorf("no suites found in %s", strings.Join(params.suitePaths, ", "))
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = framework.LoggerWithPrefix(log.New(os.Stdout, "", log.LstdFlags), "[harness] ")
	}

	target, err := harness.NewTarget(params.targetURL, params.timeout, mainDebugLogger, os.Stdout)
	if err != nil {
		return nil, err
	}

	scope.PrintFilterDescription(os.Stdout, params.filters)

	var checkLogger scope.Logger
	consoleLogger := scope.ConsoleLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	var jUnitLogger *scope.JUnitLogger
	if params.jUnitFile == "" {
		checkLogger = consoleLogger
	} else {
		properties := map[string]string{"target.url": target.BaseURL()}
		if name := target.Info().Name; name != "" {
			properties["target.name"] = name
		}
		jUnitLogger = scope.NewJUnitLogger(params.jUnitFile, properties, params.filters)
		checkLogger = scope.MultiLogger{consoleLogger, jUnitLogger}
	}

	results := suite.RunSuites(target, suites, scope.Configuration{
		Filter: params.filters,
		Logger: checkLogger,
	})

	fmt.Println()
	scope.PrintResults(results)

	if jUnitLogger != nil {
		if err := jUnitLogger.EndLog(); err != nil {
			return nil, fmt.Errorf("error writing log: %w", err)
		}
	}

	if params.recordFailures != "" {
		if err := recordFailures(params.recordFailures, results); err != nil {
			return nil, err
		}
	}

	return &results, nil
}

func recordFailures(path string, results scope.Results) error {
	f, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("cannot create suppression file: %w", err)
	}
	for _, check := range results.Failures {
		_, _ = fmt.Fprintln(f, check.ID)
	}
	return f.Close()
}

func loadSuppressions(params *commandParams) error {
	file, err := os.Open(params.skipFile)
	if err != nil {
		return fmt.Errorf("cannot open provided suppression file: %w", err)
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore blank lines
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Each component of the ID is matched separately, so the slashes must stay unescaped
		parts := strings.Split(line, "/")
		for i, p := range parts {
			parts[i] = "^" + regexp.QuoteMeta(p) + "$"
		}
		if err := params.filters.MustNotMatch.Set(strings.Join(parts, "/")); err != nil {
			return fmt.Errorf("cannot parse suppression: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("while processing suppression file: %w", err)
	}
	return nil
}

package scope

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/resultassert/resultassert/framework"
)

type environment struct {
	config  Configuration
	results Results
}

// Configuration contains options for an entire Run.
type Configuration struct {
	// Filter optionally determines which checks run, based on their names.
	Filter Filter

	// Logger receives status information about each check.
	Logger Logger

	// Context is an optional application-defined value that checks can access with T.Context.
	Context interface{}
}

// T is a check scope. It is very similar to Go's testing.T: Errorf marks the check as failed,
// and FailNow or Skip end it immediately.
type T struct {
	env         *environment
	id          ID
	debugLogger framework.CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	cleanups    []func()
	errors      []error
	helperFns   []string
}

// Run starts a top-level scope and returns the results of it and all of its children.
func Run(config Configuration, action func(*T)) Results {
	if config.Logger == nil {
		config.Logger = nullLogger{}
	}
	env := &environment{config: config}
	t := &T{env: env}
	t.run(action)
	return env.results
}

func (t *T) run(action func(*T)) (result CheckResult) {
	result.ID = t.id
	defer func() {
		if r := recover(); r != nil {
			if !t.skipped {
				t.recordPanic(r)
			}
		}
		result.Errors = t.errors
		result.Skipped = t.skipped
		if t.failed {
			t.env.results.Failures = append(t.env.results.Failures, result)
		}
		t.env.results.Checks = append(t.env.results.Checks, result)
		for i := len(t.cleanups) - 1; i >= 0; i-- {
			t.cleanups[i]()
		}
	}()

	action(t)
	return result
}

func (t *T) recordPanic(r interface{}) {
	t.failed = true
	var err error
	if _, ok := r.(*T); ok {
		if len(t.errors) == 0 {
			err = errors.New("check failed with no failure message")
		}
	} else {
		err = fmt.Errorf("unexpected panic in check: %+v\n%s", r, string(debug.Stack()))
	}
	if err != nil {
		t.errors = append(t.errors, err)
		t.env.config.Logger.CheckError(t.id, err)
	}
}

// ID returns the full name of the current scope.
func (t *T) ID() ID {
	return t.id
}

// Run runs a child scope. It is equivalent to Go's testing.T.Run, except that child scopes
// always run synchronously.
func (t *T) Run(name string, action func(*T)) {
	id := t.id.Plus(name)

	t.env.config.Logger.CheckStarted(id)
	if t.env.config.Filter != nil && !t.env.config.Filter.Match(id) {
		t.env.config.Logger.CheckSkipped(id, "excluded by filter parameters")
		return
	}
	child := &T{id: id, env: t.env}
	t.debugLogger.AddChildLogger(&child.debugLogger) // see DebugLogger
	result := child.run(action)
	t.debugLogger.RemoveChildLogger(&child.debugLogger)
	if child.skipped {
		t.env.config.Logger.CheckSkipped(id, child.skipReason)
	} else {
		t.env.config.Logger.CheckFinished(id, result, child.debugLogger.Output())
	}
}

// Errorf reports a failure. Like Go's testing.T.Errorf, it does not end the check.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	err := newCheckError(t.id, fmt.Errorf(format, args...), getStacktrace(t.helperFns))
	t.errors = append(t.errors, err)
	t.env.config.Logger.CheckError(t.id, err)
}

// FailNow ends the check immediately and marks it as failed.
func (t *T) FailNow() {
	t.failed = true
	panic(t)
}

// Failed returns true if the check has failed so far.
func (t *T) Failed() bool {
	return t.failed
}

// Skip ends the check immediately and marks it as skipped.
func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

// Debug writes a message to the output for this scope.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger for writing output for this scope. The output is passed to
// Logger.CheckFinished when the scope ends.
//
// While a child scope is running, anything written to its parent's logger goes to the child
// instead. That way output from something the parent created, such as an HTTP client, shows up
// under the check that was running at the time.
func (t *T) DebugLogger() framework.Logger {
	return &t.debugLogger
}

// Defer schedules a function to be called when this scope exits for any reason. Unlike a Go
// defer statement, it can be called from helper functions.
func (t *T) Defer(cleanupFn func()) {
	t.cleanups = append(t.cleanups, cleanupFn)
}

// Context returns the application-defined value from the Configuration, if any.
func (t *T) Context() interface{} {
	return t.env.config.Context
}

// Helper marks the calling function as a helper that should not appear in stacktraces. It is
// equivalent to Go's testing.T.Helper.
func (t *T) Helper() {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return
	}
	t.helperFns = append(t.helperFns, f.Name())
}

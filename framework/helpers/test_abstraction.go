package helpers

import (
	"errors"
	"fmt"
	"strings"
)

// TestContext is a minimal interface for types like *testing.T and *scope.T representing a
// test that can fail. All assertions in this module accept it, so they can be used from Go
// tests, from the resultcheck runner, or against a TestRecorder.
type TestContext interface {
	Helper()
	Errorf(msgFormat string, msgArgs ...interface{})
	FailNow()
}

// TestRecorder is a TestContext that just records what happened. It is mainly useful for
// verifying the failure messages produced by assertions.
//
// By default FailNow only sets Terminated and returns, so the code after a failed assertion
// keeps running. Set PanicOnTerminate to make it behave more like a real test.
type TestRecorder struct {
	Errors           []string
	Terminated       bool
	PanicOnTerminate bool
}

func (r *TestRecorder) Helper() {}

func (r *TestRecorder) Errorf(msgFormat string, msgArgs ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(msgFormat, msgArgs...))
}

func (r *TestRecorder) FailNow() {
	r.Terminated = true
	if r.PanicOnTerminate {
		panic(r)
	}
}

// Failed returns true if any error was recorded or FailNow was called.
func (r *TestRecorder) Failed() bool {
	return len(r.Errors) != 0 || r.Terminated
}

// Err returns all recorded errors joined into one, or nil if there were none.
func (r *TestRecorder) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return errors.New(strings.Join(r.Errors, ", "))
}

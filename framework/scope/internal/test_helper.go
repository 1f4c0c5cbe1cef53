// Package internal contains test helpers for scope.
package internal

// RunAction is used only in unit tests, but exported because it has to be in a separate package
// for test purposes.
func RunAction(action func()) {
	action()
}

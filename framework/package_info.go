// Package framework contains the infrastructure shared by the assertion packages and the
// resultcheck runner. The base package holds the Logger abstraction; the subpackages are:
//
//   - compare: the property-comparison primitive that every result assertion is built on.
//   - helpers: the TestContext abstraction and small utilities.
//   - opt: an optional value type.
//   - scope: a test scope similar to Go's testing.T that can be driven from application code.
//   - harness: HTTP plumbing for checking a live target.
//
// Nothing in this package knows about specific result kinds; that belongs to the actionresult
// and should packages.
package framework

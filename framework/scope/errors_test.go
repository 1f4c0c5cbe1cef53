package scope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultassert/resultassert/framework/scope/internal"
)

func TestStacktrace(t *testing.T) {
	_ = Run(Configuration{}, func(c *T) {
		c.Run("functions in this package are removed", func(c *T) {
			internal.RunAction(func() {
				stack := getStacktrace(nil)
				require.Len(t, stack, 1)
				assert.Equal(t, currentPackageName()+"/internal", stack[0].Package)
				assert.Equal(t, "RunAction", stack[0].Function)
			})
		})

		c.Run("designated helpers are removed", func(c *T) {
			internal.RunAction(func() {
				stack := getStacktrace([]string{currentPackageName() + "/internal.RunAction"})
				assert.Len(t, stack, 0)
			})
		})
	})
}

func TestParsePackageAndFunctionName(t *testing.T) {
	p, f := parsePackageAndFunctionName("github.com/a/b/c.(*T).Run")
	assert.Equal(t, "github.com/a/b/c", p)
	assert.Equal(t, "(*T).Run", f)

	p, f = parsePackageAndFunctionName("main.main")
	assert.Equal(t, "main", p)
	assert.Equal(t, "main", f)

	p, f = parsePackageAndFunctionName("nodots")
	assert.Equal(t, "nodots", p)
	assert.Equal(t, "", f)
}

func TestNewCheckError(t *testing.T) {
	t.Run("no check and no stacktrace", func(t *testing.T) {
		err := newCheckError(nil, errors.New("oops"), nil)
		assert.Equal(t, "oops", err.Error())
		assert.False(t, errors.As(err, &CheckError{}))
	})

	t.Run("attributed to a check", func(t *testing.T) {
		stack := []StackFrame{{FileName: "x.go", Package: "p", Function: "F", Line: 3}}
		err := newCheckError(ID{"orders", "create"}, errors.New("oops"), stack)
		var e CheckError
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "oops", e.Error())
		assert.Equal(t, ID{"orders", "create"}, e.Check)
		assert.Equal(t, stack, e.Stacktrace)
		assert.Equal(t, "x.go:3", e.Location())
		assert.Equal(t, "p.F (x.go:3)", stack[0].String())
		assert.Equal(t, "oops\n  Stacktrace:\n    p.F (x.go:3)", e.Report())
	})

	t.Run("check without stacktrace", func(t *testing.T) {
		err := newCheckError(ID{"orders"}, errors.New("oops"), nil)
		var e CheckError
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "", e.Location())
		assert.Equal(t, "oops", e.Report())
	})

	t.Run("testify trace is removed", func(t *testing.T) {
		message := "\n\tError Trace:\tfoo.go:1\n\tError:      \tNot equal: 1 != 2"
		err := newCheckError(nil, errors.New(message), nil)
		assert.Equal(t, "Not equal: 1 != 2", err.Error())
	})
}

func TestErrorsAreAttributedToTheirCheck(t *testing.T) {
	results := Run(Configuration{}, func(c *T) {
		c.Run("orders", func(c *T) {
			c.Errorf("status was %d", 500)
		})
	})
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	var e CheckError
	require.True(t, errors.As(results.Failures[0].Errors[0], &e))
	assert.Equal(t, ID{"orders"}, e.Check)
	assert.Equal(t, "status was 500", e.Message)
}

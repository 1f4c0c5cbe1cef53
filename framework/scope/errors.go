package scope

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// CheckError is a failure reported by a check, along with the check it belongs to and the call
// sites that led to it. Error returns only the message.
type CheckError struct {
	Check      ID
	Message    string
	Stacktrace []StackFrame
}

// StackFrame is one caller in a CheckError's stacktrace.
type StackFrame struct {
	FileName string
	Package  string
	Function string
	Line     int
}

func (e CheckError) Error() string { return e.Message }

// Location returns the innermost frame outside of helpers, which is normally the assertion call
// in the check body, or "" if there is no stacktrace.
func (e CheckError) Location() string {
	if len(e.Stacktrace) == 0 {
		return ""
	}
	s := e.Stacktrace[0]
	return fmt.Sprintf("%s:%d", s.FileName, s.Line)
}

// Report renders the failure for a report file: the message followed by the stacktrace.
func (e CheckError) Report() string {
	if len(e.Stacktrace) == 0 {
		return e.Message
	}
	lines := []string{e.Message, "  Stacktrace:"}
	for _, s := range e.Stacktrace {
		lines = append(lines, "    "+s.String())
	}
	return strings.Join(lines, "\n")
}

func (s StackFrame) String() string {
	packageName := strings.TrimPrefix(s.Package, rootPackageName()+"/")
	return fmt.Sprintf("%s.%s (%s:%d)", packageName, s.Function, s.FileName, s.Line)
}

var errorTraceInMessageRegex = regexp.MustCompile(`^(?s:\s*Error Trace:.*\sError:\s*)`) //nolint:gochecknoglobals

// newCheckError attributes a failure to a check. A testify message carries its own trace, which
// is removed in favor of stacktrace.
func newCheckError(id ID, err error, stacktrace []StackFrame) error {
	message := err.Error()
	if strings.Contains(message, "Error Trace:") {
		message = strings.TrimSpace(errorTraceInMessageRegex.ReplaceAllLiteralString(message, ""))
	}
	if len(stacktrace) == 0 && len(id) == 0 {
		return errors.New(message)
	}
	return CheckError{Check: id, Message: message, Stacktrace: stacktrace}
}

func currentPackageName() string {
	pc, _, _, ok := runtime.Caller(0)
	if !ok {
		return "?"
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "?"
	}
	packageName, _ := parsePackageAndFunctionName(f.Name())
	return packageName
}

func rootPackageName() string {
	parts := strings.Split(currentPackageName(), "/")
	if len(parts) < 3 {
		return strings.Join(parts, "/")
	}
	return strings.Join(parts[0:3], "/")
}

// getStacktrace returns the callers of the current function, omitting functions in this package
// and functions that have been marked with T.Helper. It stops at Run, which is always the root.
func getStacktrace(helperFns []string) []StackFrame {
	callers := []StackFrame{}
	currentPackage := currentPackageName()
StackLoop:
	for i := 1; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		f := runtime.FuncForPC(pc)
		if f == nil {
			break
		}
		file = file[strings.LastIndex(file, "/")+1:]

		fullFunctionName := f.Name()
		packageName, functionName := parsePackageAndFunctionName(fullFunctionName)

		if packageName == currentPackage && functionName == "Run" {
			break
		}
		if packageName == currentPackage {
			continue
		}
		for _, helperFn := range helperFns {
			if helperFn == fullFunctionName {
				continue StackLoop
			}
		}
		callers = append(callers, StackFrame{FileName: file, Package: packageName, Function: functionName, Line: line})
	}
	return callers
}

func parsePackageAndFunctionName(fullName string) (string, string) {
	lastSlash := strings.LastIndex(fullName, "/")
	firstDotAfterSlash := strings.Index(fullName[lastSlash+1:], ".")
	if firstDotAfterSlash < 0 {
		return fullName, ""
	}
	packageName := fullName[0 : lastSlash+firstDotAfterSlash+1]
	functionName := fullName[len(packageName)+1:]
	return packageName, functionName
}

package runner

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// FailureError is a check failure message with the stacktrace of the lesson
// code that reported it.
type FailureError struct {
	Message string
	Stack   []StackFrame
}

// StackFrame identifies one call site in a failure stacktrace.
type StackFrame struct {
	File     string
	Package  string
	Function string
	Line     int
}

func (e FailureError) Error() string { return e.Message }

func (f StackFrame) String() string {
	pkg := strings.TrimPrefix(f.Package, modulePath()+"/")
	return fmt.Sprintf("%s.%s (%s:%d)", pkg, f.Function, f.File, f.Line)
}

var testifyTraceRegex = regexp.MustCompile(`^(?s:\s*Error Trace:.*\sError:\s*)`)

// attachStack pairs an error with a stacktrace. Messages produced by
// testify's assert/require embed their own "Error Trace:" block, which is
// noise here because it points into testify internals; we strip it and keep
// only our own trace of lesson code.
func attachStack(err error, stack []StackFrame) error {
	message := err.Error()
	if strings.Contains(message, "Error Trace:") {
		message = strings.TrimSpace(testifyTraceRegex.ReplaceAllLiteralString(message, ""))
	}
	if len(stack) == 0 {
		return errors.New(message)
	}
	return FailureError{Message: message, Stack: stack}
}

// captureStack walks the call stack and keeps only frames that belong to
// lesson code: runner internals and registered helper functions are
// excluded, and the walk stops at runner.Run, which is always the root of a
// workshop run.
func captureStack(helperFns []string) []StackFrame {
	frames := []StackFrame{}
	runnerPackage := currentPackageName()
Walk:
	for i := 1; ; i++ { // 1 skips captureStack itself
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		f := runtime.FuncForPC(pc)
		if f == nil {
			break
		}
		parts := strings.Split(file, "/")
		file = parts[len(parts)-1]

		fullName := f.Name()
		pkg, fn := splitPackageAndFunction(fullName)

		if pkg == runnerPackage && fn == "Run" {
			break
		}
		if pkg == runnerPackage {
			continue Walk
		}
		for _, helper := range helperFns {
			if helper == fullName {
				continue Walk
			}
		}
		frames = append(frames, StackFrame{File: file, Package: pkg, Function: fn, Line: line})
	}
	return frames
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
	pkg, _ := splitPackageAndFunction(f.Name())
	return pkg
}

// modulePath derives the module path from this package's own import path, so
// that stacktrace output can show short package names.
func modulePath() string {
	p := currentPackageName()
	parts := strings.Split(p, "/")
	if len(parts) < 3 {
		return p
	}
	return strings.Join(parts[0:3], "/")
}

func splitPackageAndFunction(fullName string) (string, string) {
	lastSlash := strings.LastIndex(fullName, "/")
	firstDotAfterSlash := strings.Index(fullName[lastSlash+1:], ".")
	pkg := fullName[0 : lastSlash+firstDotAfterSlash+1]
	return pkg, fullName[len(pkg)+1:]
}

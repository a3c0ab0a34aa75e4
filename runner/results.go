package runner

import "strings"

// ScopeID is the full name of a check scope: the names of each enclosing
// scope from the top down, rendered as "lesson/group/check".
type ScopeID []string

func (id ScopeID) String() string {
	return strings.Join(id, "/")
}

// Child returns the ID of a scope nested under this one.
func (id ScopeID) Child(name string) ScopeID {
	return append(append(ScopeID(nil), id...), name)
}

// Lesson returns the top-level component of the ID, which by convention is
// the lesson name, or "" for the root scope.
func (id ScopeID) Lesson() string {
	if len(id) == 0 {
		return ""
	}
	return id[0]
}

// CheckResult is the outcome of one finished check scope.
type CheckResult struct {
	ID     ScopeID
	Errors []error
}

// Results is the aggregate outcome of a workshop run.
type Results struct {
	// Checks lists every scope that finished, in completion order (children
	// before their parents, since a parent finishes last).
	Checks []CheckResult
	// Failures lists the subset of Checks that failed.
	Failures []CheckResult
	// SkipCount is the number of scopes that were skipped, whether by the
	// check itself or by run filters.
	SkipCount int
}

// OK reports whether the run had no failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the passed/failed/skipped totals for the run summary.
func (r Results) Counts() (passed, failed, skipped int) {
	failed = len(r.Failures)
	return len(r.Checks) - failed, failed, r.SkipCount
}

// LessonPassed reports whether any checks ran under the named lesson and, if
// so, whether all of them passed.
func (r Results) LessonPassed(lesson string) (ran, passed bool) {
	for _, c := range r.Checks {
		if c.ID.Lesson() == lesson {
			ran = true
			break
		}
	}
	if !ran {
		return false, false
	}
	for _, f := range r.Failures {
		if f.ID.Lesson() == lesson {
			return true, false
		}
	}
	return true, true
}

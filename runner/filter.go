package runner

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter decides whether a specific check should run.
type Filter interface {
	Match(id ScopeID) bool
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(ScopeID) bool

func (f FilterFunc) Match(id ScopeID) bool { return f(id) }

// RegexFilters implements the -run/-skip command line options. Each pattern
// is a slash-separated list of regexes matched level by level against the
// scope ID, so "validation/area" selects checks named "area" inside the
// "validation" lesson.
type RegexFilters struct {
	MustMatch    ScopePatternList
	MustNotMatch ScopePatternList
}

func (f RegexFilters) Match(id ScopeID) bool {
	return (!f.MustMatch.IsDefined() || f.MustMatch.AnyMatch(id, true)) &&
		!f.MustNotMatch.AnyMatch(id, false)
}

// IsDefined reports whether any filtering was requested at all.
func (f RegexFilters) IsDefined() bool {
	return f.MustMatch.IsDefined() || f.MustNotMatch.IsDefined()
}

// Describe prints a human-readable explanation of the active filters before
// a run, so students are not surprised by skipped lessons.
func (f RegexFilters) Describe(w io.Writer) {
	if !f.IsDefined() {
		return
	}
	fmt.Fprintln(w, "Some checks will be skipped based on the filter criteria for this run:")
	if f.MustMatch.IsDefined() {
		fmt.Fprintf(w, "  skip any not matching %s\n", f.MustMatch)
	}
	if f.MustNotMatch.IsDefined() {
		fmt.Fprintf(w, "  skip any matching %s\n", f.MustNotMatch)
	}
	fmt.Fprintln(w)
}

// ScopePattern is one parsed pattern: a regex per scope level.
type ScopePattern []*regexp.Regexp

// Match tests the pattern against an ID level by level. When includeParents
// is true, an ID shorter than the pattern still matches if its levels all
// match; this keeps parent scopes running so that their children can be
// reached.
func (p ScopePattern) Match(id ScopeID, includeParents bool) bool {
	n := len(p)
	if n > len(id) {
		if !includeParents {
			return false
		}
		n = len(id)
	}
	for i := 0; i < n; i++ {
		if !p[i].MatchString(id[i]) {
			return false
		}
	}
	return true
}

func (p ScopePattern) String() string {
	parts := make([]string, 0, len(p))
	for _, rx := range p {
		parts = append(parts, rx.String())
	}
	return strings.Join(parts, "/")
}

// ParseScopePattern compiles a slash-separated pattern string.
func ParseScopePattern(s string) (ScopePattern, error) {
	parts := strings.Split(s, "/")
	ret := make(ScopePattern, 0, len(parts))
	for _, part := range parts {
		rx, err := regexp.Compile(part)
		if err != nil {
			return nil, fmt.Errorf("invalid regex: %w", err)
		}
		ret = append(ret, rx)
	}
	return ret, nil
}

// ScopePatternList accumulates repeated -run or -skip options. It implements
// flag.Value.
type ScopePatternList []ScopePattern

func (l ScopePatternList) String() string {
	parts := make([]string, 0, len(l))
	for _, p := range l {
		parts = append(parts, `"`+p.String()+`"`)
	}
	return strings.Join(parts, " or ")
}

// Set is called by the command line parser for each occurrence of the flag.
func (l *ScopePatternList) Set(value string) error {
	p, err := ParseScopePattern(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func (l ScopePatternList) IsDefined() bool {
	return len(l) != 0
}

func (l ScopePatternList) AnyMatch(id ScopeID, includeParents bool) bool {
	for _, p := range l {
		if p.Match(id, includeParents) {
			return true
		}
	}
	return false
}

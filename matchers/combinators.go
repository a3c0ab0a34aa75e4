package matchers

import (
	"fmt"
	"strings"
)

// Not negates another matcher.
//
//	matchers.Not(matchers.Equal(3)).Assert(t, 4)
//	// a failure would be described as "not (equal to 3)"
func Not[V any](m Matcher[V]) Matcher[V] {
	return New(
		func(value V) bool { return !m.test(value) },
		func(value V) string { return fmt.Sprintf("not (%s)", m.describeTest(value)) },
	).WithValueDescription(m.describeValue)
}

// AllOf requires the value to pass every matcher. The failure message
// describes each matcher that failed.
func AllOf[V any](ms ...Matcher[V]) Matcher[V] {
	return New(
		func(value V) bool {
			for _, m := range ms {
				if !m.test(value) {
					return false
				}
			}
			return true
		},
		func(value V) string {
			return describeFailing(ms, value, " and ")
		},
	).WithValueDescription(firstValueDescription(ms))
}

// AnyOf requires the value to pass at least one matcher.
func AnyOf[V any](ms ...Matcher[V]) Matcher[V] {
	return New(
		func(value V) bool {
			for _, m := range ms {
				if m.test(value) {
					return true
				}
			}
			return false
		},
		func(value V) string {
			return describeFailing(ms, value, " or ")
		},
	).WithValueDescription(firstValueDescription(ms))
}

func describeFailing[V any](ms []Matcher[V], value V, separator string) string {
	var failed []Matcher[V]
	for _, m := range ms {
		if !m.test(value) {
			failed = append(failed, m)
		}
	}
	if len(failed) == 1 {
		return failed[0].describeTest(value)
	}
	parts := make([]string, 0, len(failed))
	for _, m := range failed {
		parts = append(parts, "("+m.describeTest(value)+")")
	}
	return strings.Join(parts, separator)
}

func firstValueDescription[V any](ms []Matcher[V]) func(V) string {
	if len(ms) == 0 {
		return nil
	}
	return ms[0].describeValue
}

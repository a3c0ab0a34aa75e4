// Package lessons contains the workshop's check suites, one file per lesson.
// Each lesson demonstrates the testing concept it teaches by actually
// exercising the example packages with it.
package lessons

import (
	"fmt"

	"github.com/testkata/unit-testing-workshop/course"
	"github.com/testkata/unit-testing-workshop/runner"
)

// workshopContext is the application context attached to every check scope
// for the duration of a run.
type workshopContext struct {
	manifest course.Manifest
}

// lessonFns maps manifest lesson names to their check functions. The
// manifest controls the order; this map controls what exists.
var lessonFns = map[string]func(*runner.T){ //nolint:gochecknoglobals
	"first assertions": doFirstAssertionChecks,
	"input validation": doInputValidationChecks,
	"fixtures":         doFixtureChecks,
	"test suites":      doTestSuiteChecks,
	"data driven":      doDataDrivenChecks,
}

// RunWorkshop executes every lesson in the manifest, in manifest order.
func RunWorkshop(manifest course.Manifest, filter runner.Filter, reporter runner.Reporter) runner.Results {
	for _, name := range manifest.Names() {
		if _, ok := lessonFns[name]; !ok {
			failure := runner.CheckResult{
				ID:     runner.ScopeID{name},
				Errors: []error{fmt.Errorf("course manifest lists lesson %q but no checks are registered for it", name)},
			}
			return runner.Results{
				Checks:   []runner.CheckResult{failure},
				Failures: []runner.CheckResult{failure},
			}
		}
	}

	config := runner.Config{
		Filter:   filter,
		Reporter: reporter,
		Context:  workshopContext{manifest: manifest},
	}
	return runner.Run(config, doAllLessons)
}

func doAllLessons(t *runner.T) {
	manifest := workshopManifest(t)
	for _, name := range manifest.Names() {
		t.Run(name, lessonFns[name])
	}
}

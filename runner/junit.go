package runner

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slices"
)

// JUnitReporter writes run results as JUnit XML, one testsuite per lesson.
// Classrooms that grade workshop runs in CI consume this file.
type JUnitReporter struct {
	filePath string
	runID    string
	filters  RegexFilters
	order    []ScopeID // preserves the order the checks ran in
	checks   map[string]junitCheckStatus
	mu       sync.Mutex
}

type junitCheckStatus struct {
	failures   []error
	skipReason *string
	output     string
	startTime  time.Time
	duration   time.Duration
}

// Struct definitions for the JUnit XML schema - see https://github.com/jstemmer/go-junit-report

type junitXMLDocument struct {
	XMLName xml.Name            `xml:"testsuites"`
	Suites  []junitXMLTestSuite `xml:"testsuite"`
}

type junitXMLTestSuite struct {
	XMLName    xml.Name           `xml:"testsuite"`
	Tests      int                `xml:"tests,attr"`
	Failures   int                `xml:"failures,attr"`
	Time       string             `xml:"time,attr"`
	Name       string             `xml:"name,attr"`
	Properties []junitXMLProperty `xml:"properties>property,omitempty"`
	TestCases  []junitXMLTestCase `xml:"testcase"`
}

type junitXMLTestCase struct {
	XMLName     xml.Name             `xml:"testcase"`
	Classname   string               `xml:"classname,attr"`
	Name        string               `xml:"name,attr"`
	Time        string               `xml:"time,attr"`
	SkipMessage *junitXMLSkipMessage `xml:"skipped,omitempty"`
	Failure     *junitXMLFailure     `xml:"failure,omitempty"`
}

type junitXMLSkipMessage struct {
	Message string `xml:"message,attr"`
}

type junitXMLProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type junitXMLFailure struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

// NewJUnitReporter creates a reporter that will write to filePath when the
// run ends. The runID ties the XML output to the progress record for the
// same run.
func NewJUnitReporter(filePath, runID string, filters RegexFilters) *JUnitReporter {
	return &JUnitReporter{
		filePath: filePath,
		runID:    runID,
		filters:  filters,
		checks:   make(map[string]junitCheckStatus),
	}
}

func (j *JUnitReporter) CheckStarted(id ScopeID) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.order = append(j.order, id)
	j.checks[id.String()] = junitCheckStatus{startTime: time.Now()}
}

func (j *JUnitReporter) CheckError(id ScopeID, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	status := j.checks[id.String()]
	status.failures = append(status.failures, err)
	j.checks[id.String()] = status
}

func (j *JUnitReporter) CheckFinished(id ScopeID, result CheckResult, transcript Output) {
	j.mu.Lock()
	defer j.mu.Unlock()
	status := j.checks[id.String()]
	status.output = transcript.Indent("")
	status.duration = time.Since(status.startTime)
	j.checks[id.String()] = status
}

func (j *JUnitReporter) CheckSkipped(id ScopeID, reason string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	status := j.checks[id.String()]
	status.skipReason = &reason
	j.checks[id.String()] = status
}

// EndRun writes the XML file.
func (j *JUnitReporter) EndRun(Results) error {
	fmt.Printf("Writing JUnit data to %s\n", j.filePath)

	j.mu.Lock()
	defer j.mu.Unlock()

	properties := []junitXMLProperty{
		{Name: "workshop.run.id", Value: j.runID},
		{Name: "workshop.filter.mustMatch", Value: j.filters.MustMatch.String()},
		{Name: "workshop.filter.mustNotMatch", Value: j.filters.MustNotMatch.String()},
	}

	var doc junitXMLDocument
	for _, lesson := range lessonsInOrder(j.order) {
		suite := junitXMLTestSuite{
			Name:       fmt.Sprintf("unit-testing workshop: %s", lesson),
			Properties: properties,
		}
		suiteDuration := time.Duration(0)
		for _, id := range j.order {
			if id.Lesson() != lesson {
				continue
			}
			status := j.checks[id.String()]

			suite.Tests++
			if len(status.failures) != 0 {
				suite.Failures++
			}
			suiteDuration += status.duration

			testCase := junitXMLTestCase{
				Name: id.String(),
				Time: junitDurationString(status.duration),
			}
			if status.skipReason != nil {
				testCase.SkipMessage = &junitXMLSkipMessage{Message: *status.skipReason}
			}
			if len(status.failures) != 0 {
				var messages []string
				for _, e := range status.failures {
					message := e.Error()
					if fe, ok := e.(FailureError); ok {
						message += "\n  Stacktrace:"
						for _, frame := range fe.Stack {
							message += "\n    " + frame.String()
						}
					}
					messages = append(messages, message)
				}
				testCase.Failure = &junitXMLFailure{
					Message:  strings.Join(messages, "\n"),
					Contents: status.output,
				}
			}

			suite.TestCases = append(suite.TestCases, testCase)
		}
		suite.Time = junitDurationString(suiteDuration)
		doc.Suites = append(doc.Suites, suite)
	}

	bytes, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	bytes = append(bytes, '\n')

	return os.WriteFile(j.filePath, bytes, 0644) //nolint:gosec
}

func lessonsInOrder(ids []ScopeID) []string {
	var ret []string
	for _, id := range ids {
		if lesson := id.Lesson(); lesson != "" && !slices.Contains(ret, lesson) {
			ret = append(ret, lesson)
		}
	}
	return ret
}

func junitDurationString(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}

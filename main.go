package main

import (
	"bufio"
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/testkata/unit-testing-workshop/course"
	"github.com/testkata/unit-testing-workshop/lessons"
	"github.com/testkata/unit-testing-workshop/progress"
	"github.com/testkata/unit-testing-workshop/runner"
)

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("unit-testing-workshop v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (*runner.Results, error) {
	manifest, err := course.LoadManifest()
	if err != nil {
		return nil, err
	}

	if params.listLessons {
		printLessons(manifest)
		return &runner.Results{}, nil
	}

	if params.retryFile != "" {
		if err := loadRetryFilters(&params); err != nil {
			return nil, err
		}
	}

	runID := uuid.NewString()

	var reporter runner.Reporter
	console := runner.ConsoleReporter{
		TranscriptOnFailure: params.verbose || params.verboseAll,
		TranscriptAlways:    params.verboseAll,
	}
	if params.jUnitFile == "" {
		reporter = console
	} else {
		reporter = runner.MultiReporter{Reporters: []runner.Reporter{
			console,
			runner.NewJUnitReporter(params.jUnitFile, runID, params.filters),
		}}
	}

	params.filters.Describe(os.Stdout)

	results := lessons.RunWorkshop(manifest, params.filters, reporter)

	if err := reporter.EndRun(results); err != nil {
		return nil, fmt.Errorf("error writing log: %w", err)
	}

	if params.recordFailures != "" {
		if err := writeFailureFile(params.recordFailures, results); err != nil {
			return nil, err
		}
	}

	if !params.noProgress {
		if err := saveProgress(params, runID, manifest, results); err != nil {
			// Progress is bookkeeping; a broken state directory should not
			// turn a passing run into a failing one.
			fmt.Fprintf(os.Stderr, "Warning: could not record progress: %v\n", err)
		}
	}

	return &results, nil
}

func printLessons(manifest course.Manifest) {
	fmt.Printf("Lessons in %s:\n", manifest.Course)
	for i, l := range manifest.Lessons {
		fmt.Printf("  %d. %s - %s (%s)\n", i+1, l.Name, l.Title, l.Topic)
	}
}

// loadRetryFilters turns a file of previously failed check IDs (as written
// by -record-failures) into must-match filters, so a student can rerun just
// what failed last time.
func loadRetryFilters(params *commandParams) error {
	file, err := os.Open(params.retryFile)
	if err != nil {
		return fmt.Errorf("cannot open provided retry file: %w", err)
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore blank lines
		if strings.TrimSpace(line) == "" {
			continue
		}
		escaped := regexp.QuoteMeta(line)
		if err := params.filters.MustMatch.Set(escaped); err != nil {
			return fmt.Errorf("cannot parse retry entry: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("while processing retry file: %w", err)
	}
	return nil
}

func writeFailureFile(path string, results runner.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create failure file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, check := range results.Failures {
		fmt.Fprintln(w, check.ID)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("cannot write failure file: %w", err)
	}
	return f.Close()
}

func saveProgress(params commandParams, runID string, manifest course.Manifest, results runner.Results) error {
	path := params.progressFile
	if path == "" {
		var err error
		path, err = progress.DefaultPath()
		if err != nil {
			return err
		}
	}
	store := progress.NewStore(path)
	file, err := store.RecordRun(runID, time.Now(), manifest.Names(), results)
	if err != nil {
		return err
	}
	fmt.Printf("Progress: %d of %d lessons passed (recorded in %s)\n",
		file.Completed(), len(manifest.Lessons), store.Path())
	return nil
}

// Package progress persists per-lesson results between workshop runs, so a
// student can put the workshop down and see where they left off.
package progress

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/testkata/unit-testing-workshop/runner"
)

// Status is the recorded outcome of a lesson.
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// LessonRecord is the most recent outcome of one lesson.
type LessonRecord struct {
	Status    Status    `yaml:"status"`
	UpdatedAt time.Time `yaml:"updated_at"`
	RunID     string    `yaml:"run_id"`
}

// RunRecord summarizes the last run that touched the file.
type RunRecord struct {
	RunID      string    `yaml:"run_id"`
	FinishedAt time.Time `yaml:"finished_at"`
	Passed     int       `yaml:"passed"`
	Failed     int       `yaml:"failed"`
	Skipped    int       `yaml:"skipped"`
}

// File is the on-disk progress document.
type File struct {
	Lessons map[string]LessonRecord `yaml:"lessons"`
	LastRun *RunRecord              `yaml:"last_run,omitempty"`
}

// Completed counts lessons currently recorded as passed.
func (f File) Completed() int {
	n := 0
	for _, rec := range f.Lessons {
		if rec.Status == StatusPassed {
			n++
		}
	}
	return n
}

// DefaultPath returns the progress file location under the XDG state
// directory, creating the directory if needed.
func DefaultPath() (string, error) {
	dir := filepath.Join(xdg.StateHome, "unit-testing-workshop")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create progress directory: %w", err)
	}
	return filepath.Join(dir, "progress.yaml"), nil
}

// Store reads and writes one progress file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the progress file. A missing file is not an error; it returns
// an empty document.
func (s *Store) Load() (File, error) {
	f := File{Lessons: make(map[string]LessonRecord)}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return f, fmt.Errorf("cannot read progress file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("progress file %s is corrupt: %w", s.path, err)
	}
	if f.Lessons == nil {
		f.Lessons = make(map[string]LessonRecord)
	}
	return f, nil
}

// RecordRun merges one run's results into the file and saves it. Only
// lessons that actually ran are updated, so a filtered run never erases
// what is known about the other lessons.
func (s *Store) RecordRun(runID string, finishedAt time.Time, lessons []string, results runner.Results) (File, error) {
	f, err := s.Load()
	if err != nil {
		return f, err
	}

	for _, lesson := range lessons {
		ran, passed := results.LessonPassed(lesson)
		if !ran {
			continue
		}
		status := StatusFailed
		if passed {
			status = StatusPassed
		}
		f.Lessons[lesson] = LessonRecord{Status: status, UpdatedAt: finishedAt, RunID: runID}
	}

	passed, failed, skipped := results.Counts()
	f.LastRun = &RunRecord{
		RunID:      runID,
		FinishedAt: finishedAt,
		Passed:     passed,
		Failed:     failed,
		Skipped:    skipped,
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return f, err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec
		return f, fmt.Errorf("cannot write progress file: %w", err)
	}
	return f, nil
}

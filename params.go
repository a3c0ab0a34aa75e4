package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/testkata/unit-testing-workshop/runner"
)

type commandParams struct {
	filters        runner.RegexFilters
	verbose        bool
	verboseAll     bool
	jUnitFile      string
	listLessons    bool
	retryFile      string
	recordFailures string
	noProgress     bool
	progressFile   string
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select checks to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select checks not to run")
	fs.BoolVar(&c.verbose, "v", false, "show transcripts for failed checks")
	fs.BoolVar(&c.verboseAll, "vv", false, "show transcripts for all checks")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.BoolVar(&c.listLessons, "list", false, "list the lessons and exit")
	fs.StringVar(&c.retryFile, "retry-file", "", "run only the checks named in this file (one ID per line)")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write the IDs of failed checks to the specified path")
	fs.BoolVar(&c.noProgress, "no-progress", false, "do not record this run in the progress file")
	fs.StringVar(&c.progressFile, "progress-file", "", "override the progress file location")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return false
	}
	return true
}

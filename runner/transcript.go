package runner

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const transcriptTimeFormat = "2006-01-02 15:04:05.000"

// Entry is one line of transcript output from a check.
type Entry struct {
	Time    time.Time
	Message string
}

// Output is the transcript captured for a single check scope, in the order
// the lines were written.
type Output []Entry

// Indent renders the transcript with a prefix on each line, for console
// display.
func (o Output) Indent(prefix string) string {
	lines := make([]string, 0, len(o))
	for _, e := range o {
		lines = append(lines, fmt.Sprintf("%s[%s] %s", prefix, e.Time.Format(transcriptTimeFormat), e.Message))
	}
	return strings.Join(lines, "\n")
}

// Transcript records the debug output of a check scope.
//
// While a child scope is running, output written to the parent's transcript
// is routed to the child instead, and the child starts out with a copy of
// whatever the parent had already recorded. This matters when a parent scope
// sets up shared state (a fixture, a loaded data file) that many subchecks
// use: each subcheck's transcript then tells the whole story on its own.
type Transcript struct {
	entries  []Entry
	children []*Transcript
	mu       sync.Mutex
}

// Printf appends a formatted line to the transcript.
func (tr *Transcript) Printf(format string, args ...interface{}) {
	tr.add(Entry{Time: time.Now(), Message: fmt.Sprintf(format, args...)})
}

// Println appends a line to the transcript.
func (tr *Transcript) Println(args ...interface{}) {
	msg := strings.TrimRight(fmt.Sprintln(args...), "\r\n")
	tr.add(Entry{Time: time.Now(), Message: msg})
}

func (tr *Transcript) add(e Entry) {
	var children []*Transcript
	tr.mu.Lock()
	if len(tr.children) == 0 {
		tr.entries = append(tr.entries, e)
	} else {
		children = append([]*Transcript(nil), tr.children...)
	}
	tr.mu.Unlock()
	for _, c := range children {
		c.add(e)
	}
}

// Output returns a snapshot of everything recorded so far.
func (tr *Transcript) Output() Output {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append(Output(nil), tr.entries...)
}

func (tr *Transcript) attach(child *Transcript) {
	tr.mu.Lock()
	tr.children = append(tr.children, child)
	inherited := append([]Entry(nil), tr.entries...)
	tr.mu.Unlock()
	child.mu.Lock()
	child.entries = append(inherited, child.entries...)
	child.mu.Unlock()
}

func (tr *Transcript) detach(child *Transcript) {
	tr.mu.Lock()
	for i, c := range tr.children {
		if c == child {
			tr.children = append(tr.children[:i], tr.children[i+1:]...)
			break
		}
	}
	tr.mu.Unlock()
}

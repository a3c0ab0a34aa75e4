// Package course defines the workshop's lesson plan and the data files that
// drive the parameterized checks. The lesson plan lives in an embedded YAML
// manifest so the runner, the docs, and the progress store all agree on the
// lesson names.
package course

import "fmt"

// Manifest is the parsed course manifest (coursedata/course.yaml).
type Manifest struct {
	Course  string       `json:"course"`
	Lessons []LessonInfo `json:"lessons"`
}

// LessonInfo describes one lesson in the course.
type LessonInfo struct {
	// Name is the lesson's scope name in the runner, e.g. "input validation".
	Name string `json:"name"`
	// Title is the human-readable title used by -list and the docs.
	Title string `json:"title"`
	// Topic is the testing concept the lesson teaches.
	Topic string `json:"topic"`
	// Doc is the repo-relative path of the lesson's tutorial page.
	Doc string `json:"doc"`
}

// LoadManifest parses the embedded course manifest.
func LoadManifest() (Manifest, error) {
	data, err := courseFilesRoot.ReadFile(courseBasePath + "/course.yaml")
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read course manifest: %w", err)
	}
	var m Manifest
	if err := ParseJSONOrYAML(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("error parsing course manifest: %w", err)
	}
	if len(m.Lessons) == 0 {
		return Manifest{}, fmt.Errorf("course manifest lists no lessons")
	}
	seen := make(map[string]bool, len(m.Lessons))
	for _, l := range m.Lessons {
		if l.Name == "" {
			return Manifest{}, fmt.Errorf("course manifest contains a lesson with no name")
		}
		if seen[l.Name] {
			return Manifest{}, fmt.Errorf("course manifest lists lesson %q twice", l.Name)
		}
		seen[l.Name] = true
	}
	return m, nil
}

// Lesson finds a lesson by name.
func (m Manifest) Lesson(name string) (LessonInfo, bool) {
	for _, l := range m.Lessons {
		if l.Name == name {
			return l, true
		}
	}
	return LessonInfo{}, false
}

// Names returns the lesson names in course order.
func (m Manifest) Names() []string {
	ret := make([]string, 0, len(m.Lessons))
	for _, l := range m.Lessons {
		ret = append(ret, l.Name)
	}
	return ret
}

package course

import (
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

//go:embed coursedata
var courseFilesRoot embed.FS

const courseBasePath = "coursedata"

// CaseFile is the contents of one data-driven case file, after constant
// expansion.
type CaseFile struct {
	Path string
	Name string
	Data []byte
}

// ParseInto parses the file contents into the given target struct.
func (c CaseFile) ParseInto(target interface{}) error {
	if err := ParseJSONOrYAML(c.Data, target); err != nil {
		return fmt.Errorf("error parsing %q: %w", c.Name, err)
	}
	return nil
}

// LoadCaseFile reads an embedded case file and expands any constants it
// declares. The path is relative to course/coursedata.
func LoadCaseFile(path string) (CaseFile, error) {
	data, err := courseFilesRoot.ReadFile(courseBasePath + "/" + path)
	if err != nil {
		return CaseFile{}, fmt.Errorf("failed to read %q: %w", path, err)
	}
	expanded, err := expandConstants(data)
	if err != nil {
		return CaseFile{}, fmt.Errorf("error reading %q: %w", path, err)
	}
	return CaseFile{Path: path, Name: filepath.Base(path), Data: expanded}, nil
}

// expandConstants replaces <NAME> placeholders in the file body with the
// values from the file's own top-level "constants" map. A quoted "<NAME>"
// becomes the constant's JSON value (so numeric constants stay numeric); a
// bare <NAME> inside a longer string is interpolated as text.
func expandConstants(data []byte) ([]byte, error) {
	var header struct {
		Constants map[string]interface{} `json:"constants"`
	}
	if err := ParseJSONOrYAML(data, &header); err != nil {
		return nil, err
	}
	if len(header.Constants) == 0 {
		return data, nil
	}
	str := string(data)
	for name, value := range header.Constants {
		jsonValue, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("constant %q has an unmarshalable value: %w", name, err)
		}
		typed := string(jsonValue)
		str = strings.ReplaceAll(str, `"<`+name+`>"`, typed)
		interpolated := typed
		if s, ok := value.(string); ok {
			interpolated = s
		}
		str = strings.ReplaceAll(str, "<"+name+">", interpolated)
	}
	return []byte(str), nil
}

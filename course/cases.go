package course

// The typed representations of the case files under coursedata/cases. The
// wantError values are symbolic ("negative", "nonfinite", "nonpositive");
// the lessons map them onto the example packages' sentinel errors so that
// the data files stay independent of Go identifiers.

// AreaCaseFile is the parsed form of cases/circle_area.yaml.
type AreaCaseFile struct {
	Name  string     `json:"name"`
	Cases []AreaCase `json:"cases"`
}

// AreaCase is one circle-area check: either an expected value or an expected
// error kind.
type AreaCase struct {
	Name      string  `json:"name"`
	Radius    float64 `json:"radius"`
	Expected  float64 `json:"expected"`
	WantError string  `json:"wantError"`
}

// BMICaseFile is the parsed form of cases/bmi.yaml.
type BMICaseFile struct {
	Name  string    `json:"name"`
	Cases []BMICase `json:"cases"`
}

// BMICase is one body-mass-index check.
type BMICase struct {
	Name      string  `json:"name"`
	MassKg    float64 `json:"massKg"`
	HeightM   float64 `json:"heightM"`
	Expected  float64 `json:"expected"`
	Category  string  `json:"category"`
	WantError string  `json:"wantError"`
}

// LoadAreaCases loads and parses the circle-area case file.
func LoadAreaCases() (AreaCaseFile, error) {
	var parsed AreaCaseFile
	file, err := LoadCaseFile("cases/circle_area.yaml")
	if err != nil {
		return parsed, err
	}
	err = file.ParseInto(&parsed)
	return parsed, err
}

// LoadBMICases loads and parses the body-mass-index case file.
func LoadBMICases() (BMICaseFile, error) {
	var parsed BMICaseFile
	file, err := LoadCaseFile("cases/bmi.yaml")
	if err != nil {
		return parsed, err
	}
	err = file.ParseInto(&parsed)
	return parsed, err
}

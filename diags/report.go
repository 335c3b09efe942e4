package diags

import (
	"gopkg.in/yaml.v3"
)

type Report struct {
	Name        string       `yaml:"name,omitempty"`
	Accepted    bool         `yaml:"accepted"`
	Diagnostics []ReportItem `yaml:"diagnostics,omitempty"`
}

type ReportItem struct {
	Kind    Kind   `yaml:"kind"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
	Message string `yaml:"message"`
}

func NewReport(name string, list []Diagnostic) Report {
	report := Report{
		Name:     name,
		Accepted: len(list) == 0,
	}
	for _, d := range list {
		report.Diagnostics = append(report.Diagnostics, ReportItem{
			Kind:    d.Kind,
			Line:    d.Pos.Line,
			Column:  d.Pos.Column,
			Message: d.Message,
		})
	}
	return report
}

func (r Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

func (r Report) String() string {
	if r.Accepted {
		return "accepted"
	}
	return "rejected"
}

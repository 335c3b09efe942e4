package parsers

import (
	"errors"

	"github.com/reusee/typy/diags"
	"github.com/reusee/typy/nodes"
)

type Result struct {
	Name string
	// nil unless accepted
	Tree        *nodes.Program
	Diagnostics []diags.Diagnostic
}

func (r Result) Accepted() bool {
	return len(r.Diagnostics) == 0
}

func (r Result) Report() diags.Report {
	return diags.NewReport(r.Name, r.Diagnostics)
}

// Err joins the diagnostics, or returns nil if the source is accepted.
func (r Result) Err() error {
	errs := make([]error, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		errs = append(errs, d)
	}
	return errors.Join(errs...)
}

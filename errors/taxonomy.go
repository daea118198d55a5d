package errors

import (
	stderrors "errors"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// TaxonomyError collects every problem found while building a custom
// taxonomy, each reported as an E1002 diagnostic.
type TaxonomyError struct {
	Problems []*Diagnostic
}

// Add records a problem. Errors aggregated by exception.NewTaxonomy are split
// into one diagnostic per entry.
func (e *TaxonomyError) Add(err error) {
	if err == nil {
		return
	}
	var diag *Diagnostic
	var merr *multierror.Error
	switch {
	case stderrors.As(err, &diag):
		e.Problems = append(e.Problems, diag)
	case stderrors.As(err, &merr):
		for _, entry := range merr.Errors {
			e.Add(entry)
		}
	default:
		e.Problems = append(e.Problems, NewDiagnostic(E1002, err.Error(), ""))
	}
}

// ErrorOrNil returns e when it holds at least one problem. Problems are
// ordered by message so the report does not depend on map iteration.
func (e *TaxonomyError) ErrorOrNil() error {
	if e == nil || len(e.Problems) == 0 {
		return nil
	}
	sort.SliceStable(e.Problems, func(i, j int) bool {
		return e.Problems[i].Message < e.Problems[j].Message
	})
	return e
}

func (e *TaxonomyError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return "invalid taxonomy: " + strings.Join(msgs, "; ")
}

func (e *TaxonomyError) Unwrap() []error {
	errs := make([]error, len(e.Problems))
	for i, p := range e.Problems {
		errs[i] = p
	}
	return errs
}

// ToFormattedList converts every problem for display with FormatMultiple.
func (e *TaxonomyError) ToFormattedList() []*FormattedError {
	list := make([]*FormattedError, len(e.Problems))
	for i, p := range e.Problems {
		list[i] = p.ToFormatted()
	}
	return list
}

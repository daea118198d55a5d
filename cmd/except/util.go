package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/deepnoodle-ai/except/errors"
	"github.com/fatih/color"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.FgHiBlack).SprintFunc()
)

// describeError renders err as a diagnostic, using the structured formatter
// for engine errors and taxonomy reports.
func describeError(err error) string {
	f := errors.NewFormatter(!color.NoColor)
	var multi errors.MultiFormattableError
	if stderrors.As(err, &multi) {
		return f.FormatMultiple(multi.ToFormattedList())
	}
	var formattable errors.FormattableError
	if stderrors.As(err, &formattable) {
		return f.Format(formattable.ToFormatted())
	}
	return red(err.Error()) + "\n"
}

func fatal(err error) {
	fmt.Fprint(os.Stderr, describeError(err))
	os.Exit(1)
}

package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/except/errors"
	"github.com/deepnoodle-ai/except/exception"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	oldNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = oldNoColor })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestKindsCmd(t *testing.T) {
	out, _, err := execute(t, "kinds")
	require.NoError(t, err)

	rows := map[string][]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		rows[fields[0]] = fields[1:]
	}
	require.Equal(t, []string{"PARENT", "DESCRIPTION"}, rows["KIND"])
	require.Equal(t, []string{"logic_error", "out", "of", "range", "error"}, rows["out_of_range"])
	require.Equal(t, []string{"runtime_error", "overflow", "error"}, rows["overflow_error"])
	require.Equal(t, []string{"-", "bad", "allocation"}, rows["bad_alloc"])
	require.Equal(t, []string{"-", "catches", "every", "kind"}, rows["any"])
	require.Len(t, rows, 12)
}

func TestWriteTableAlignsStyledCells(t *testing.T) {
	oldNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = oldNoColor }()

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, [][]string{
		{bold("KIND"), bold("PARENT"), bold("DESCRIPTION")},
		{"out_of_range", "logic_error", "out of range error"},
	}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "\x1b[")

	header := regexp.MustCompile(`\x1b\[[0-9;]*m`).ReplaceAllString(lines[0], "")
	require.Equal(t, strings.Index(lines[1], "logic_error"), strings.Index(header, "PARENT"))
	require.Equal(t, strings.Index(lines[1], "out of range"), strings.Index(header, "DESCRIPTION"))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "except.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTaxonomyFromConfig(t *testing.T) {
	path := writeConfig(t, "taxonomy:\n  bad_alloc: runtime_error\n  out-of-range: logic_error\n  logic_error: none\n")

	out, _, err := execute(t, "--config", path, "throw", "bad_alloc", "--catch", "runtime_error")
	require.NoError(t, err)
	require.Contains(t, out, "caught bad_alloc by runtime_error clause")

	// Kinds left out of the table have no parent.
	_, _, err = execute(t, "--config", path, "throw", "length_error", "--catch", "logic_error")
	var uncaught *errors.UncaughtError
	require.True(t, stderrors.As(err, &uncaught))
	require.Equal(t, exception.LengthError, uncaught.Kind)

	out, _, err = execute(t, "--config", path, "kinds")
	require.NoError(t, err)
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 1 && fields[0] == "bad_alloc" {
			require.Equal(t, "runtime_error", fields[1])
		}
		if len(fields) > 1 && fields[0] == "overflow_error" {
			require.Equal(t, "-", fields[1])
		}
	}
}

func TestTaxonomyConfigReportsEveryProblem(t *testing.T) {
	path := writeConfig(t, "taxonomy:\n  bad_alloc: bad_alloc\n  range_error: runtim_error\n  overflow: runtime_error\n")

	_, _, err := execute(t, "--config", path, "demo")
	var terr *errors.TaxonomyError
	require.True(t, stderrors.As(err, &terr))
	require.Len(t, terr.Problems, 3)
	for _, p := range terr.Problems {
		require.Equal(t, errors.E1002, p.Code)
	}

	expected := "error[E1002 1/3]: bad_alloc cannot inherit from itself\n" +
		"\n" +
		"error[E1002 2/3]: unknown kind \"overflow\" in taxonomy\n" +
		"\n" +
		"error[E1002 3/3]: unknown parent kind \"runtim_error\" for range_error\n" +
		"  = hint: did you mean runtime_error?\n" +
		"\n" +
		"found 3 errors\n"
	require.Equal(t, expected, describeError(err))
}

func TestDemoCmd(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.Equal(t, "Caught exception: logic error\n"+
		"Caught exception: out of range error\n", out)

	var uncaught *errors.UncaughtError
	require.True(t, stderrors.As(err, &uncaught))
	require.Equal(t, exception.BadAlloc, uncaught.Kind)
	require.Equal(t, "terminate[E3001]: uncaught exception bad_alloc\n"+
		"  = note: bad allocation\n", describeError(err))
}

func TestThrowCmdCaught(t *testing.T) {
	out, _, err := execute(t, "throw", "out_of_range",
		"--catch", "domain_error", "--catch", "logic_error", "--catch", "any", "--nest", "3")
	require.NoError(t, err)
	require.Equal(t, "throwing out_of_range at depth 3\n"+
		"caught out_of_range by logic_error clause at depth 3: out of range error\n", out)
}

func TestThrowCmdUncaught(t *testing.T) {
	out, _, err := execute(t, "throw", "bad_alloc", "-c", "runtime_error", "-n", "2")
	require.Equal(t, "throwing bad_alloc at depth 2\n", out)

	var uncaught *errors.UncaughtError
	require.True(t, stderrors.As(err, &uncaught))
	require.Equal(t, exception.BadAlloc, uncaught.Kind)
}

func TestThrowCmdUnknownKind(t *testing.T) {
	_, _, err := execute(t, "throw", "out_of_rang")
	var diag *errors.Diagnostic
	require.True(t, stderrors.As(err, &diag))
	require.Equal(t, errors.E1001, diag.Code)
	require.Equal(t, "did you mean out_of_range?", diag.Hint)

	_, _, err = execute(t, "throw", "overflow_error", "--catch", "runtim_error")
	require.True(t, stderrors.As(err, &diag))
	require.Contains(t, diag.Hint, "runtime_error")
}

func TestThrowCmdRejectsAny(t *testing.T) {
	_, _, err := execute(t, "throw", "any")
	require.Error(t, err)
	require.Equal(t, "any can only be used in a catch clause", err.Error())
}

func TestMaxDepthFromEnv(t *testing.T) {
	t.Setenv("EXCEPT_MAX_DEPTH", "2")
	_, _, err := execute(t, "throw", "range_error", "--nest", "3", "--catch", "any")

	var fault *errors.RuntimeError
	require.True(t, stderrors.As(err, &fault))
	require.Equal(t, errors.E2001, fault.Code)
}

func TestMaxDepthFlagOverridesEnv(t *testing.T) {
	t.Setenv("EXCEPT_MAX_DEPTH", "2")
	_, _, err := execute(t, "--max-depth", "3", "throw", "range_error", "--nest", "3", "--catch", "any")
	require.NoError(t, err)
}

func TestVerboseLogsEvents(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "throw", "length_error", "--catch", "logic_error")
	require.NoError(t, err)
	require.Contains(t, stderr, "enter region")
	require.Contains(t, stderr, "throw")
	require.Contains(t, stderr, "length_error")
	require.Contains(t, stderr, "leave region")
}

func TestDescribePlainError(t *testing.T) {
	oldNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = oldNoColor }()
	require.Equal(t, "boom\n", describeError(stderrors.New("boom")))
}

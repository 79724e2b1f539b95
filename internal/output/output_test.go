package output

import (
	"bytes"
	"strings"
	"testing"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := &Writer{
		out:   stdout,
		err:   stderr,
		color: false, // Disable color for predictable test output
		quiet: false,
	}
	return w, stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil {
		t.Error("out writer is nil")
	}
	if w.err == nil {
		t.Error("err writer is nil")
	}
}

func TestWriter_SetQuiet(t *testing.T) {
	w, _, _ := newTestWriter()

	w.SetQuiet(true)
	if !w.quiet {
		t.Error("SetQuiet(true) did not set quiet")
	}

	w.SetQuiet(false)
	if w.quiet {
		t.Error("SetQuiet(false) did not unset quiet")
	}
}

func TestWriter_SetColor(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.SetColor(true)
	w.FinalSuccess("done")
	if !strings.Contains(stdout.String(), "\033[32m") {
		t.Error("FinalSuccess with color did not emit green")
	}

	stdout.Reset()
	w.SetColor(false)
	w.FinalSuccess("done")
	if strings.Contains(stdout.String(), "\033[") {
		t.Error("FinalSuccess without color emitted ANSI codes")
	}
}

func TestWriter_Print(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Print("hello %s", "world")

	if got := stdout.String(); got != "hello world" {
		t.Errorf("Print() = %q, want %q", got, "hello world")
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("hello %s", "world")

	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("Println() = %q, want %q", got, "hello world\n")
	}
}

func TestWriter_Errorln(t *testing.T) {
	w, stdout, stderr := newTestWriter()

	w.Errorln("bad %s", "input")

	if got := stderr.String(); got != "bad input\n" {
		t.Errorf("Errorln() = %q, want %q", got, "bad input\n")
	}
	if stdout.Len() != 0 {
		t.Errorf("Errorln() wrote to stdout: %q", stdout.String())
	}
}

func TestWriter_InfoQuiet(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.SetQuiet(true)

	w.Info("should not appear")

	if stdout.Len() != 0 {
		t.Errorf("Info() in quiet mode wrote: %q", stdout.String())
	}
}

func TestWriter_ErrorPrefix(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.ErrorPrefix("cannot open %s", "serial.log")

	want := "jittrack: cannot open serial.log\n"
	if got := stderr.String(); got != want {
		t.Errorf("ErrorPrefix() = %q, want %q", got, want)
	}
}

func TestWriter_Warning(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Warning("tolerance %g is loose", 0.5)

	want := "warning: tolerance 0.5 is loose\n"
	if got := stderr.String(); got != want {
		t.Errorf("Warning() = %q, want %q", got, want)
	}
}

func TestWriter_SummaryItems(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.SummaryHeader("Run Summary")
	w.SummaryPassed("Passed", "41")
	w.SummaryFailed("Failed", "1")
	w.SummaryItem("Total", "42")

	got := stdout.String()
	for _, want := range []string{"=== Run Summary ===", "Passed: 41", "Failed: 1", "Total: 42"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary output missing %q in %q", want, got)
		}
	}
}

func TestWriter_Table(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Table(
		[]string{"Category", "Total"},
		[][]string{
			{"add.i4", "3"},
			{"conv.ovf.i1", "12"},
		},
	)

	got := stdout.String()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Table() printed %d lines, want 4: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "Category") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("separator line = %q", lines[1])
	}
	// Columns are padded to the widest cell.
	if !strings.HasPrefix(lines[2], "add.i4     ") {
		t.Errorf("row line = %q, want padded to conv.ovf.i1 width", lines[2])
	}
}

func TestWriter_List(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.List([]string{"arith", "convert"})

	want := "  - arith\n  - convert\n"
	if got := stdout.String(); got != want {
		t.Errorf("List() = %q, want %q", got, want)
	}
}

func TestWriter_FinalFailure(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.FinalFailure("%d of %d tests failed.", 2, 10)

	want := "\n2 of 10 tests failed.\n"
	if got := stdout.String(); got != want {
		t.Errorf("FinalFailure() = %q, want %q", got, want)
	}
}

func TestWriter_SuiteStartQuiet(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.SetQuiet(true)

	w.SuiteStart("arith")

	if stdout.Len() != 0 {
		t.Errorf("SuiteStart() in quiet mode wrote: %q", stdout.String())
	}
}

func TestWriter_HelpOutput(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.HelpTitle("jittrack - JIT conformance result tracker")
	w.HelpSection("Usage:")
	w.HelpUsage("jittrack summary <file>")
	w.HelpCommand("summary", "Summarize an outcome stream", 10)
	w.HelpFlag("--quiet", "Suppress progress output", 10)
	w.HelpExample("jittrack summary serial.log", "Summarize a captured serial log")

	got := stdout.String()
	for _, want := range []string{
		"jittrack - JIT conformance result tracker",
		"Usage:",
		"jittrack summary <file>",
		"summary",
		"--quiet",
		"jittrack summary serial.log",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestColorPlaceholders(t *testing.T) {
	w, _, _ := newTestWriter()
	w.SetColor(true)

	got := w.colorPlaceholders("summary <file> done")
	if !strings.Contains(got, colorPlaceholder+"<file>"+reset) {
		t.Errorf("colorPlaceholders() = %q, want colored <file>", got)
	}

	// Unclosed bracket passes through untouched.
	if got := w.colorPlaceholders("a < b"); got != "a < b" {
		t.Errorf("colorPlaceholders(%q) = %q", "a < b", got)
	}
}

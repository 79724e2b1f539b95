package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ProtonOS/ProtonOS-sub011/internal/report"
)

func TestParseSummaryArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantFormat string
		wantOut    string
		wantSource string
		wantErr    bool
	}{
		{
			name:       "no args reads stdin",
			args:       nil,
			wantSource: "-",
		},
		{
			name:       "explicit stdin",
			args:       []string{"-"},
			wantSource: "-",
		},
		{
			name:       "file source",
			args:       []string{"results.log"},
			wantSource: "results.log",
		},
		{
			name:       "--format with space",
			args:       []string{"results.log", "--format", "jsonl"},
			wantFormat: "jsonl",
			wantSource: "results.log",
		},
		{
			name:       "--format=value",
			args:       []string{"--format=jsonl"},
			wantFormat: "jsonl",
			wantSource: "-",
		},
		{
			name:       "--out=value",
			args:       []string{"boot.log", "--out=summary.yaml"},
			wantOut:    "summary.yaml",
			wantSource: "boot.log",
		},
		{
			name:    "--format without value",
			args:    []string{"--format"},
			wantErr: true,
		},
		{
			name:    "--out without value",
			args:    []string{"--out"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: true,
		},
		{
			name:    "two sources",
			args:    []string{"a.log", "b.log"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSummaryArgs(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.format != tt.wantFormat {
				t.Errorf("format = %q, want %q", got.format, tt.wantFormat)
			}
			if got.out != tt.wantOut {
				t.Errorf("out = %q, want %q", got.out, tt.wantOut)
			}
			if got.source != tt.wantSource {
				t.Errorf("source = %q, want %q", got.source, tt.wantSource)
			}
		})
	}
}

// writeInput writes an outcome stream into a temp dir and returns its path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCmdSummary_AllPassing(t *testing.T) {
	path := writeInput(t, "serial.log", strings.Join([]string{
		"boot: jit initialized",
		"PASS add.i4.Simple",
		"PASS add.i4.Overflow",
		"PASS mul.r8.Basic",
	}, "\n"))

	exitCode := cmdSummary([]string{path}, &GlobalOptions{Quiet: true})
	if exitCode != 0 {
		t.Errorf("cmdSummary() = %d, want 0", exitCode)
	}
}

func TestCmdSummary_WithFailures(t *testing.T) {
	path := writeInput(t, "serial.log", strings.Join([]string{
		"PASS add.i4.Simple",
		"FAIL mul.r8.NaN: expected NaN, got 0",
	}, "\n"))

	exitCode := cmdSummary([]string{path}, &GlobalOptions{Quiet: true})
	if exitCode != 1 {
		t.Errorf("cmdSummary() with failures = %d, want 1", exitCode)
	}
}

func TestCmdSummary_JSONLFormat(t *testing.T) {
	path := writeInput(t, "results.jsonl", strings.Join([]string{
		`{"name": "add.i4.Simple", "passed": true}`,
		`{"name": "mul.r8.NaN", "passed": false, "detail": "expected NaN"}`,
	}, "\n"))

	exitCode := cmdSummary([]string{path, "--format", "jsonl"}, &GlobalOptions{Quiet: true})
	if exitCode != 1 {
		t.Errorf("cmdSummary(jsonl with failure) = %d, want 1", exitCode)
	}
}

func TestCmdSummary_NoOutcomes(t *testing.T) {
	path := writeInput(t, "noise.log", "boot noise only\nnothing to see here\n")

	exitCode := cmdSummary([]string{path}, &GlobalOptions{Quiet: true})
	if exitCode != 3 {
		t.Errorf("cmdSummary(no outcomes) = %d, want 3", exitCode)
	}
}

func TestCmdSummary_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.log")

	exitCode := cmdSummary([]string{path}, &GlobalOptions{Quiet: true})
	if exitCode != 3 {
		t.Errorf("cmdSummary(missing file) = %d, want 3", exitCode)
	}
}

func TestCmdSummary_UnknownFormat(t *testing.T) {
	path := writeInput(t, "serial.log", "PASS add.i4.Simple\n")

	exitCode := cmdSummary([]string{path, "--format", "xml"}, &GlobalOptions{Quiet: true})
	if exitCode != 2 {
		t.Errorf("cmdSummary(unknown format) = %d, want 2", exitCode)
	}
}

func TestCmdSummary_WritesArtifact(t *testing.T) {
	path := writeInput(t, "serial.log", strings.Join([]string{
		"PASS add.i4.Simple",
		"FAIL add.i4.Overflow: wrapped wrong",
	}, "\n"))
	artifact := filepath.Join(t.TempDir(), "summary.yaml")

	exitCode := cmdSummary([]string{path, "--out", artifact}, &GlobalOptions{Quiet: true})
	if exitCode != 1 {
		t.Errorf("cmdSummary() = %d, want 1", exitCode)
	}

	data, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}

	var parsed report.Artifact
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("artifact is not valid YAML: %v", err)
	}
	if parsed.Summary.Total != 2 || parsed.Summary.Failed != 1 {
		t.Errorf("artifact counts = %+v, want total 2 failed 1", parsed.Summary.Counts)
	}
}

func TestCmdSummary_ConfigFormatApplies(t *testing.T) {
	cfgPath := writeTestConfig(t, `{"harness": {"name": "protonos-jit"}, "input": {"format": "jsonl"}}`)
	path := writeInput(t, "results.jsonl", `{"name": "add.i4.Simple", "passed": true}`+"\n")

	exitCode := cmdSummary([]string{path}, &GlobalOptions{Quiet: true, ConfigPath: cfgPath})
	if exitCode != 0 {
		t.Errorf("cmdSummary() with jsonl config = %d, want 0", exitCode)
	}
}

func TestCmdSummary_Help(t *testing.T) {
	exitCode := cmdSummary([]string{"--help"}, &GlobalOptions{})
	if exitCode != 0 {
		t.Errorf("cmdSummary(--help) = %d, want 0", exitCode)
	}
}

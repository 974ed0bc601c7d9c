package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const scenarioTranscript = `01/02/23, 09:00 - Alice: hello
01/02/23, 09:05 - Bob: hi there
01/02/23, 09:06 - Bob: how are you
`

func writeTranscript(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func runAnalyzeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewAnalyzeCommand()
	cmd.SetArgs(args)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return buf.String(), err
}

func TestAnalyze_Scenario(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "chat.txt", scenarioTranscript)

	out, err := runAnalyzeCmd(t, dir, "--self", "Bob", "--cutoff", "0s")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"FILE: chat.txt",
		"TOTAL (ALL FILES)",
		"Total messages: 3",
		"Sent (self):    2",
		"Received:       1",
		"Sent/Received:  2.000",
		"Self reaction:  avg=5m 0s  med=5m 0s  n=1",
		"Other reaction: avg=n/a  med=n/a  n=0",
		"Cutoff: no cutoff",
		"hello: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	// Hour bucket 9 holds all three messages.
	if !strings.Contains(out, "09:      3 ") {
		t.Errorf("hour bucket 9 missing:\n%s", out)
	}
}

func TestAnalyze_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "chat.txt", scenarioTranscript)

	out, err := runAnalyzeCmd(t, dir, "--self", "Bob", "--output", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if _, ok := decoded["total"]; !ok {
		t.Error("JSON output missing total")
	}
}

func TestAnalyze_NoTranscripts(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "notes.md", "not a transcript")

	out, err := runAnalyzeCmd(t, dir)
	if err != nil {
		t.Fatalf("Execute() error = %v (no transcripts is not an error)", err)
	}
	if !strings.Contains(out, "No .txt files found in:") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestAnalyze_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeTranscript(t, dir, "file.txt", "content")

	if _, err := runAnalyzeCmd(t, file); err == nil {
		t.Error("Execute() expected error for non-directory argument")
	}

	if _, err := runAnalyzeCmd(t, filepath.Join(dir, "missing")); err == nil {
		t.Error("Execute() expected error for missing directory")
	}
}

func TestAnalyze_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.txt", "01/02/23, 09:00 - Alice: uno\n")
	writeTranscript(t, dir, "b.txt", "01/02/23, 10:00 - Bob: due\n01/02/23, 10:01 - Bob: tre\n")

	out, err := runAnalyzeCmd(t, dir, "--self", "Bob")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "FILE: a.txt") || !strings.Contains(out, "FILE: b.txt") {
		t.Errorf("per-file sections missing:\n%s", out)
	}
	// Aggregate spans both files.
	if !strings.Contains(out, "TOTAL (ALL FILES)") {
		t.Errorf("aggregate section missing:\n%s", out)
	}
	afterTotal := out[strings.Index(out, "TOTAL (ALL FILES)"):]
	if !strings.Contains(afterTotal, "Total messages: 3") {
		t.Errorf("aggregate not computed over all files:\n%s", afterTotal)
	}
}

func TestAnalyze_ConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "chat.txt", scenarioTranscript)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("self_names: [\"Alice\"]\ntop_words: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Flag wins over the config file value.
	out, err := runAnalyzeCmd(t, dir, "--config", configPath, "--self", "Bob")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Self names: Bob") {
		t.Errorf("flag did not override config:\n%s", out)
	}
}

func TestAnalyze_Quiet(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "chat.txt", scenarioTranscript)

	out, err := runAnalyzeCmd(t, dir, "--self", "Bob", "--quiet")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "1 file(s), 3 messages (2 sent / 1 received)") {
		t.Errorf("unexpected quiet output: %q", out)
	}
}

func TestAnalyze_InferredSelf(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "chat.txt", scenarioTranscript)

	out, err := runAnalyzeCmd(t, dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	// Bob has 2 of 3 messages and is guessed as self.
	if !strings.Contains(out, `guessed "Bob"`) {
		t.Errorf("inference note missing:\n%s", out)
	}
}

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runDetectCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewDetectCommand()
	cmd.SetArgs(args)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return buf.String(), err
}

func TestDetect_DashDialect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.txt")
	content := "12/31/23, 21:05 - Alice: hello\n12/31/23, 21:06 - Bob: hi\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runDetectCmd(t, path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "-> Dash-separated single-line") {
		t.Errorf("best dialect not marked:\n%s", out)
	}
	if !strings.Contains(out, "confidence 100%") {
		t.Errorf("confidence missing:\n%s", out)
	}
}

func TestDetect_AmbiguousDates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.txt")
	if err := os.WriteFile(path, []byte("01/02/23, 09:00 - Alice: hi\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runDetectCmd(t, path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "WARNING:") {
		t.Errorf("ambiguity warning missing:\n%s", out)
	}
}

func TestDetect_NoDialect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prose.txt")
	if err := os.WriteFile(path, []byte("just some prose\nno headers here\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runDetectCmd(t, path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "No known dialect matched") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestDetect_MissingFile(t *testing.T) {
	if _, err := runDetectCmd(t, "/nonexistent/chat.txt"); err == nil {
		t.Error("Execute() expected error for missing file")
	}
}

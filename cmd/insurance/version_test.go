package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func setupVersionTest(t *testing.T) *bytes.Buffer {
	t.Helper()
	// Reset flags between test runs to avoid state leaking
	versionCmd.Flags().Set("short", "false")
	versionCmd.Flags().Set("json", "false")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	return buf
}

func TestVersionOutput_ContainsFields(t *testing.T) {
	buf := setupVersionTest(t)
	rootCmd.SetArgs([]string{"version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	out := buf.String()
	for _, field := range []string{"insurance version", "commit:", "built:", "go version:", "platform:"} {
		if !strings.Contains(out, field) {
			t.Errorf("version output missing %q field. Got:\n%s", field, out)
		}
	}
}

func TestVersionShort(t *testing.T) {
	buf := setupVersionTest(t)
	rootCmd.SetArgs([]string{"version", "--short"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version --short failed: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != version {
		t.Errorf("expected %q, got %q", version, got)
	}
}

func TestVersionJSON(t *testing.T) {
	buf := setupVersionTest(t)
	rootCmd.SetArgs([]string{"version", "--json"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version --json failed: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\nGot: %s", err, buf.String())
	}

	for _, key := range []string{"version", "commit", "built", "goVersion", "platform"} {
		if _, ok := result[key]; !ok {
			t.Errorf("JSON output missing key %q. Got: %v", key, result)
		}
	}
}

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// runApp runs the CLI with args and returns what it wrote to stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runAppContext(t, context.Background(), args...)
}

func runAppContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runAppStreams(ctx, args...)
	return stdout, err
}

// runAppStreams runs the CLI and returns stdout and stderr separately.
func runAppStreams(ctx context.Context, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.RunContext(ctx, append([]string{"cpucaps"}, args...))
	return stdout.String(), stderr.String(), err
}

// decodeJSON decodes command output into a map.
func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("output is not a JSON object: %v\n%s", err, out)
	}
	return m
}

// writeConfig writes a YAML config file into a temp dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cpucaps.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

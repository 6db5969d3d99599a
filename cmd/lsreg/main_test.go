package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpCommand(t *testing.T) {
	sample := testDumpPath(t, "sample.txt")

	tests := []struct {
		name           string
		args           []string
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:        "dump text",
			args:        []string{"dump", "--input", sample},
			wantContain: []string{"bundle {", "uid                  = 1588", "name = \"com.apple.Safari\"", "unknown {", "is_mounted = YES"},
		},
		{
			name:           "list alias skipping unknown",
			args:           []string{"list", "--input", sample, "--skip-unknown"},
			wantContain:    []string{"bundle {", "handler {"},
			wantNotContain: []string{"unknown {"},
		},
		{
			name:           "dump xml",
			args:           []string{"dump", "-i", sample, "-f", "xml"},
			wantContain:    []string{"<records>", `<bundle id="1588"`, `<item>QuickLook/PDF.qlgenerator</item>`, "</records>"},
			wantNotContain: []string{"3001"},
		},
		{
			name:        "dump json",
			args:        []string{"dump", "-i", sample, "--format", "json"},
			wantContain: []string{`"kind": "bundle"`, `"uri_scheme": "http"`},
			wantJSON:    true,
		},
		{
			name:        "dump yaml",
			args:        []string{"dump", "-i", sample, "--format", "YAML"},
			wantContain: []string{"kind: volume", "disk_image: /Users/rasmus/Downloads/Backup.dmg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, tt.args...)
			require.NoError(t, err)

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDumpCommand_JSONRecordCount(t *testing.T) {
	output, err := runCLI(t, "dump", "--input", testDumpPath(t, "sample.txt"), "--format", "json")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &records))
	require.Len(t, records, 6)
}

func TestDumpCommand_Stdin(t *testing.T) {
	f, err := os.Open(testDumpPath(t, "sample.txt"))
	require.NoError(t, err)
	defer f.Close()

	origStdin := os.Stdin
	os.Stdin = f
	t.Cleanup(func() { os.Stdin = origStdin })

	output, err := runCLI(t, "dump", "--input", "-", "--skip-unknown")
	require.NoError(t, err)
	require.Equal(t, 5, strings.Count(output, " {\n  uid"))
}

func TestDumpCommand_Errors(t *testing.T) {
	sample := testDumpPath(t, "sample.txt")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown format", args: []string{"dump", "-i", sample, "-f", "plist"}, want: "unsupported format"},
		{name: "missing input", args: []string{"dump", "-i", filepath.Join(t.TempDir(), "absent.txt")}, want: "open dump"},
		{name: "positional argument", args: []string{"dump", "extra"}, want: "unknown command"},
		{name: "bad log format", args: []string{"dump", "-i", sample, "--log-format", "xml"}, want: "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDumpCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsreg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))

	output, err := runCLI(t, "dump", "-i", testDumpPath(t, "sample.txt"), "--config", path)
	require.NoError(t, err)
	require.Contains(t, output, "<records>")

	// The flag wins over the file.
	output, err = runCLI(t, "dump", "-i", testDumpPath(t, "sample.txt"), "--config", path, "-f", "json")
	require.NoError(t, err)
	assertJSON(t, output)
}

func TestDumpCommand_Environment(t *testing.T) {
	t.Setenv("LSREG_FORMAT", "yaml")

	output, err := runCLI(t, "dump", "-i", testDumpPath(t, "sample.txt"))
	require.NoError(t, err)
	require.Contains(t, output, "kind: handler")
}

func TestFindCommand(t *testing.T) {
	sample := testDumpPath(t, "sample.txt")

	output, err := runCLI(t, "find", "COM.APPLE.S", "--input", sample)
	require.NoError(t, err)
	require.Equal(t, "/Applications/Safari.app\n", output)

	output, err = runCLI(t, "find", "com.apple.", "--input", sample)
	require.NoError(t, err)
	require.Equal(t, "/Applications/Safari.app\n/System/Library/Frameworks/Quartz.framework\n", output)

	output, err = runCLI(t, "find", "org.example", "--input", sample)
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestFindCommand_JSON(t *testing.T) {
	output, err := runCLI(t, "find", "com.apple.quartz", "-i", testDumpPath(t, "sample.txt"), "-f", "json")
	require.NoError(t, err)

	var bundles []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &bundles))
	require.Len(t, bundles, 1)
	require.Equal(t, "Quartz", bundles[0]["name"])
}

func TestFindCommand_RequiresPrefix(t *testing.T) {
	_, err := runCLI(t, "find")
	require.Error(t, err)
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "lsreg.yaml")

	output, err := runCLI(t, "config", "init", path)
	require.NoError(t, err)
	require.Contains(t, output, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "format: text")

	_, err = runCLI(t, "config", "init", path)
	require.Error(t, err, "refuses to overwrite")

	_, err = runCLI(t, "config", "init", path, "--force")
	require.NoError(t, err)
}

func TestConfigInitCommand_DefaultPath(t *testing.T) {
	output, err := runCLI(t, "config", "init")
	require.NoError(t, err)

	xdg := os.Getenv("XDG_CONFIG_HOME")
	require.FileExists(t, filepath.Join(xdg, "lsreg", "config.yaml"))
	require.Contains(t, output, xdg)
}

func TestVersionCommand(t *testing.T) {
	output, err := runCLI(t, "version")
	require.NoError(t, err)
	assertContains(t, output, []string{"lsreg dev", "commit: none", "built: unknown"})
}

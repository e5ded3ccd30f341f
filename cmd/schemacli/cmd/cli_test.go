package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// runCLI resets the package-level config and viper singletons, builds a
// fresh command tree rooted at statePath, and executes args against it --
// the schemacli analogue of running the binary once.
func runCLI(t *testing.T, statePath string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	viper.Reset()
	config = NewDemoConfig()

	root := RootCmd()
	var outBuf, errBuf bytes.Buffer
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(append([]string{"--state", statePath}, args...))
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestGetDefaultBrightness(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	out, _, err := runCLI(t, statePath, "get", "/brightness")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if strings.TrimSpace(out) != "0" {
		t.Errorf("get /brightness = %q, want 0", out)
	}
}

func TestSetThenGetPersistsAcrossInvocations(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")

	if _, stderr, err := runCLI(t, statePath, "set", "/brightness", "9"); err != nil {
		t.Fatalf("set: %v (stderr: %s)", err, stderr)
	}
	if _, err := os.Stat(statePath); err != nil {
		t.Fatalf("state file was not written: %v", err)
	}

	out, _, err := runCLI(t, statePath, "get", "/brightness")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := strings.TrimSpace(out); got != "9" {
		t.Errorf("get /brightness after reload = %q, want 9", got)
	}
}

func TestSetChannelByIndexPersists(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")

	if _, _, err := runCLI(t, statePath, "set", "/channels/2", "0.75"); err != nil {
		t.Fatalf("set /channels/2: %v", err)
	}
	out, _, err := runCLI(t, statePath, "get", "/channels/2")
	if err != nil {
		t.Fatalf("get /channels/2: %v", err)
	}
	if got := strings.TrimSpace(out); got != "0.75" {
		t.Errorf("get /channels/2 = %q, want 0.75", got)
	}
	// an untouched sibling index stays at its zero value.
	out, _, err = runCLI(t, statePath, "get", "/channels/0")
	if err != nil {
		t.Fatalf("get /channels/0: %v", err)
	}
	if got := strings.TrimSpace(out); got != "0" {
		t.Errorf("get /channels/0 = %q, want 0", out)
	}
}

func TestSetUnknownNameFails(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	_, _, err := runCLI(t, statePath, "set", "/nope", "1")
	if err == nil {
		t.Fatal("expected an error setting an unknown path")
	}
}

func TestSetOutOfRangeChannelFails(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	_, _, err := runCLI(t, statePath, "set", "/channels/9", "1")
	if err == nil {
		t.Fatal("expected an error setting an out-of-range channel index")
	}
}

func TestListEnumeratesAllLeaves(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	out, _, err := runCLI(t, statePath, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if got, want := len(lines), 2+channelCount; got != want {
		t.Fatalf("list produced %d lines, want %d:\n%s", got, want, out)
	}
	for _, want := range []string{"brightness", "label", "channels/0", "channels/3"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

// withMenuStateDir chdirs into a fresh temp directory for the duration of
// the test, isolating schemacli_menu.state between test cases.
func withMenuStateDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestMenuEnterWhereExit(t *testing.T) {
	withMenuStateDir(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	if _, _, err := runCLI(t, statePath, "menu", "enter", "/channels"); err != nil {
		t.Fatalf("menu enter: %v", err)
	}
	out, _, err := runCLI(t, statePath, "menu", "where")
	if err != nil {
		t.Fatalf("menu where: %v", err)
	}
	if got := strings.TrimSpace(out); got != "/channels" {
		t.Errorf("menu where = %q, want /channels", got)
	}

	if _, _, err := runCLI(t, statePath, "menu", "enter", "/2"); err != nil {
		t.Fatalf("menu enter /2: %v", err)
	}
	out, _, err = runCLI(t, statePath, "menu", "where")
	if err != nil {
		t.Fatalf("menu where: %v", err)
	}
	if got := strings.TrimSpace(out); got != "/channels/2" {
		t.Errorf("menu where = %q, want /channels/2", got)
	}

	if _, _, err := runCLI(t, statePath, "menu", "exit", "2"); err != nil {
		t.Fatalf("menu exit 2: %v", err)
	}
	out, _, err = runCLI(t, statePath, "menu", "where")
	if err != nil {
		t.Fatalf("menu where after exit: %v", err)
	}
	if got := strings.TrimSpace(out); got != "" {
		t.Errorf("menu where after exit = %q, want empty root", got)
	}
}

func TestMenuGetSetRelativeToRoot(t *testing.T) {
	withMenuStateDir(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	if _, _, err := runCLI(t, statePath, "menu", "enter", "/channels"); err != nil {
		t.Fatalf("menu enter: %v", err)
	}
	if _, _, err := runCLI(t, statePath, "menu", "set", "/1", "3.5"); err != nil {
		t.Fatalf("menu set: %v", err)
	}
	out, _, err := runCLI(t, statePath, "menu", "get", "/1")
	if err != nil {
		t.Fatalf("menu get: %v", err)
	}
	if got := strings.TrimSpace(out); got != "3.5" {
		t.Errorf("menu get /1 = %q, want 3.5", got)
	}
}

func TestMenuExitBeyondRootFails(t *testing.T) {
	withMenuStateDir(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	if _, _, err := runCLI(t, statePath, "menu", "exit"); err == nil {
		t.Fatal("expected an error exiting past the root")
	}
}

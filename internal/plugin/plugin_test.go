package plugin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type stubAPI struct {
	statuses []string
	logs     []string
}

func (s *stubAPI) Status(msg string) { s.statuses = append(s.statuses, msg) }
func (s *stubAPI) Log(msg string)    { s.logs = append(s.logs, msg) }

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingScript(t *testing.T) {
	host, err := Load(filepath.Join(t.TempDir(), "init.lua"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if host != nil {
		t.Fatal("missing script must yield a nil host")
	}

	// Hooks on a nil host are no-ops.
	if err := host.OnOpen("x"); err != nil {
		t.Errorf("OnOpen on nil host: %v", err)
	}
	host.Close()
}

func TestScriptRunsAtLoad(t *testing.T) {
	api := &stubAPI{}
	host, err := Load(writeScript(t, `editor.log("loaded")`), api)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer host.Close()

	if len(api.logs) != 1 || api.logs[0] != "loaded" {
		t.Errorf("logs = %q, want [loaded]", api.logs)
	}
}

func TestHookDispatch(t *testing.T) {
	api := &stubAPI{}
	host, err := Load(writeScript(t, `
function on_save(path)
  editor.status("saved " .. path)
end
`), api)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer host.Close()

	if err := host.OnSave("/tmp/file.txt"); err != nil {
		t.Fatalf("OnSave: %v", err)
	}
	if len(api.statuses) != 1 || api.statuses[0] != "saved /tmp/file.txt" {
		t.Errorf("statuses = %q", api.statuses)
	}

	// Undefined hooks are no-ops.
	if err := host.OnOpen("/tmp/file.txt"); err != nil {
		t.Errorf("OnOpen without a hook: %v", err)
	}
}

func TestHookError(t *testing.T) {
	host, err := Load(writeScript(t, `
function on_save(path)
  error("boom")
end
`), &stubAPI{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer host.Close()

	err = host.OnSave("x")
	if err == nil || !strings.Contains(err.Error(), "on_save") {
		t.Errorf("OnSave = %v, want an on_save hook error", err)
	}
}

func TestBrokenScriptFailsLoad(t *testing.T) {
	if _, err := Load(writeScript(t, `this is not lua`), &stubAPI{}); err == nil {
		t.Error("a broken script must fail Load")
	}
}

func TestSandboxHasNoOSLibrary(t *testing.T) {
	_, err := Load(writeScript(t, `os.exit(1)`), &stubAPI{})
	if err == nil {
		t.Error("os library must not be available to scripts")
	}
}

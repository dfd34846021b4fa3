package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathDefaultDir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}
	realTmpDir, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("resolve tmp dir symlink failed: %v", err)
	}
	realGot, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("resolve got dir symlink failed: %v", err)
	}
	if want := filepath.Join(realTmpDir, defaultLogDirName); realGot != want {
		t.Fatalf("unexpected log dir: got=%s want=%s", realGot, want)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("unexpected log filename: %s", filepath.Base(got))
	}
}

func TestNewReleaseWritesToConfiguredFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "release.log"})
	log.Info("release-log-test")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "release.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	if !strings.Contains(string(content), "release-log-test") {
		t.Fatalf("expected log content to contain message, got=%s", string(content))
	}
}

func TestNewDebugDoesNotWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "debug.log"})
	log.Info("debug-log-test")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file")
	}
}

func TestSWWithoutFieldsReturnsBaseLogger(t *testing.T) {
	if SW() == nil {
		t.Fatalf("SW without fields should never return nil")
	}
	if SW("request_id", "abc") == nil {
		t.Fatalf("SW with fields should never return nil")
	}
}

func TestNewReleaseTagsAppAndHonorsLevel(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Level: "warn", Dir: tmpDir, Filename: "level.log"})
	log.Info("info-should-be-dropped")
	log.Warn("warn-should-be-kept")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "level.log"))
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	text := string(content)
	if strings.Contains(text, "info-should-be-dropped") {
		t.Fatalf("info entry should be filtered at warn level")
	}
	if !strings.Contains(text, "warn-should-be-kept") {
		t.Fatalf("warn entry missing: %s", text)
	}
	if !strings.Contains(text, `"app":"`+appName+`"`) {
		t.Fatalf("entries should carry the app field: %s", text)
	}
}

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		debug bool
		raw   string
		want  string
	}{
		{debug: true, raw: "", want: "debug"},
		{debug: false, raw: "", want: "info"},
		{debug: false, raw: "ERROR", want: "error"},
		{debug: true, raw: "loud", want: "debug"},
	}
	for _, tc := range cases {
		if got := resolveLevel(tc.debug, tc.raw).String(); got != tc.want {
			t.Fatalf("resolveLevel(%v, %q) want %s got %s", tc.debug, tc.raw, tc.want, got)
		}
	}
}

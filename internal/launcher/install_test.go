package launcher

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdirall: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writefile: %v", err)
	}
}

func realpath(t *testing.T, p string) string {
	t.Helper()
	r, err := filepath.EvalSymlinks(p)
	if err != nil {
		t.Fatalf("evalsymlinks: %v", err)
	}
	return r
}

func TestResolveInstallation(t *testing.T) {
	root := realpath(t, t.TempDir())
	exe := filepath.Join(root, "bin", "claudecraft-init")
	writeFile(t, exe, "")

	inst, err := ResolveInstallation(exe)
	if err != nil {
		t.Fatalf("ResolveInstallation: %v", err)
	}
	if inst.Root != root {
		t.Fatalf("expected root %s, got %s", root, inst.Root)
	}
	if want := filepath.Join(root, ScriptName); inst.ScriptPath() != want {
		t.Fatalf("expected script %s, got %s", want, inst.ScriptPath())
	}
}

func TestResolveInstallation_FollowsSymlink(t *testing.T) {
	requirePOSIX(t)
	root := realpath(t, t.TempDir())
	exe := filepath.Join(root, "bin", "claudecraft-init")
	writeFile(t, exe, "")

	link := filepath.Join(realpath(t, t.TempDir()), "usr", "local", "bin", "claudecraft-init")
	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		t.Fatalf("mkdirall: %v", err)
	}
	if err := os.Symlink(exe, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	inst, err := ResolveInstallation(link)
	if err != nil {
		t.Fatalf("ResolveInstallation: %v", err)
	}
	if inst.Root != root {
		t.Fatalf("expected root %s (symlink target), got %s", root, inst.Root)
	}
}

func TestResolveInstallation_MissingExecutable(t *testing.T) {
	if _, err := ResolveInstallation(filepath.Join(t.TempDir(), "bin", "gone")); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestDetectInstallation(t *testing.T) {
	t.Run("CLAUDECRAFT_HOME wins", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvHome, dir)
		inst, err := DetectInstallation()
		if err != nil {
			t.Fatalf("DetectInstallation: %v", err)
		}
		if inst.Root != dir {
			t.Fatalf("expected root %s, got %s", dir, inst.Root)
		}
	})

	t.Run("CLAUDECRAFT_HOME expands ~", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)
		t.Setenv(EnvHome, "~/claudecraft")
		inst, err := DetectInstallation()
		if err != nil {
			t.Fatalf("DetectInstallation: %v", err)
		}
		if want := filepath.Join(home, "claudecraft"); inst.Root != want {
			t.Fatalf("expected root %s, got %s", want, inst.Root)
		}
	})

	t.Run("falls back to executable location", func(t *testing.T) {
		t.Setenv(EnvHome, "")
		inst, err := DetectInstallation()
		if err != nil {
			t.Fatalf("DetectInstallation: %v", err)
		}
		exe, err := os.Executable()
		if err != nil {
			t.Fatalf("executable: %v", err)
		}
		want := filepath.Dir(filepath.Dir(realpath(t, exe)))
		if inst.Root != want {
			t.Fatalf("expected root %s, got %s", want, inst.Root)
		}
	})
}

package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Installation is the directory claudecraft-init was installed into. The
// binary sits at <Root>/bin/claudecraft-init and the setup script at
// <Root>/setup-project.sh.
type Installation struct {
	Root string
}

func (i Installation) ScriptPath() string {
	return filepath.Join(i.Root, ScriptName)
}

// DetectInstallation locates the installation root.
// Priority: CLAUDECRAFT_HOME > two levels above the running executable.
func DetectInstallation() (Installation, error) {
	if env := strings.TrimSpace(os.Getenv(EnvHome)); env != "" {
		root, err := filepath.Abs(expandUser(env))
		if err != nil {
			return Installation{}, fmt.Errorf("resolve %s: %w", EnvHome, err)
		}
		return Installation{Root: root}, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return Installation{}, fmt.Errorf("locate executable: %w", err)
	}
	return ResolveInstallation(exe)
}

// ResolveInstallation derives the root from the launcher's own path. Symlinks
// are followed first so a PATH symlink to the binary still finds the script
// next to the real install.
func ResolveInstallation(exe string) (Installation, error) {
	abs, err := filepath.Abs(exe)
	if err != nil {
		return Installation{}, err
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return Installation{}, fmt.Errorf("resolve executable %s: %w", abs, err)
	}
	return Installation{Root: filepath.Dir(filepath.Dir(real))}, nil
}

func expandUser(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		if p == "~" {
			return home
		}
		return filepath.Join(home, p[2:])
	}
	return p
}

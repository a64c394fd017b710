package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"runtime"
	"syscall"
)

// ExitError carries the status the launcher should exit with. A nil Err means
// the status came from the script itself and nothing should be printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Launcher runs one setup script with inherited stdio.
type Launcher struct {
	Script string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the script with args forwarded verbatim and waits for it.
// A missing script yields exit 1 without spawning anything; a script that
// cannot be made executable or started yields exit 126; otherwise the
// script's own status is returned as an *ExitError (nil on success).
func (l Launcher) Run(ctx context.Context, args []string) error {
	if _, err := os.Stat(l.Script); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ExitError{Code: ExitConfig, Err: fmt.Errorf("setup script not found: %s", l.Script)}
		}
		return &ExitError{Code: ExitConfig, Err: fmt.Errorf("stat setup script %s: %w", l.Script, err)}
	}
	if err := EnsureExecutable(l.Script); err != nil {
		return &ExitError{Code: ExitLaunchFailed, Err: err}
	}

	c := l.cmd(ctx, args)
	if err := c.Start(); err != nil {
		return &ExitError{Code: ExitLaunchFailed, Err: fmt.Errorf("start %s: %w", l.Script, err)}
	}
	err := c.Wait()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitStatus(exitErr)}
	}
	return &ExitError{Code: ExitLaunchFailed, Err: fmt.Errorf("wait %s: %w", l.Script, err)}
}

func (l Launcher) cmd(ctx context.Context, args []string) *exec.Cmd {
	var c *exec.Cmd
	if runtime.GOOS == "windows" {
		// .sh files are not directly executable; hand them to sh from PATH.
		c = exec.CommandContext(ctx, "sh", append([]string{l.Script}, args...)...)
	} else {
		c = exec.CommandContext(ctx, l.Script, args...)
	}
	c.Stdin = orReader(l.Stdin, os.Stdin)
	c.Stdout = orWriter(l.Stdout, os.Stdout)
	c.Stderr = orWriter(l.Stderr, os.Stderr)
	return c
}

// EnsureExecutable sets mode 0755 unless every execute bit is already set.
func EnsureExecutable(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	if st.Mode().Perm()&0o111 == 0o111 {
		return nil
	}
	if err := os.Chmod(path, ScriptMode); err != nil {
		return fmt.Errorf("make %s executable: %w", path, err)
	}
	return nil
}

func exitStatus(err *exec.ExitError) int {
	if code := err.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return exitSignalBase + int(ws.Signal())
	}
	return ExitLaunchFailed
}

func orReader(r, def io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return def
}

func orWriter(w, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}

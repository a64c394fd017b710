package launcher

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func Main() int {
	inst, err := DetectInstallation()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return ExitConfig
	}
	return execute(newRootCmd(inst), os.Args[1:])
}

func execute(root *cobra.Command, args []string) int {
	// A leading "--" stops cobra from resolving args[0] as one of its hidden
	// commands (__complete); RunE drops it again.
	root.SetArgs(append([]string{argsTerminator}, args...))
	err := root.Execute()
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(root.ErrOrStderr(), exitErr.Err.Error())
		}
		return exitErr.Code
	}
	fmt.Fprintln(root.ErrOrStderr(), err.Error())
	return ExitConfig
}

func newRootCmd(inst Installation) *cobra.Command {
	return &cobra.Command{
		Use:   "claudecraft-init [ARGS...]",
		Short: "Run the ClaudeCraft project setup script",
		Long: strings.TrimSpace(`
Run the ClaudeCraft project setup script.

claudecraft-init locates setup-project.sh in its installation root (the
parent of the directory holding this binary), makes it executable, and runs
it. Every argument, including --help, is passed to the script unchanged and
the script's exit status becomes the exit status of claudecraft-init.

The installation root can be overridden via env var:
  CLAUDECRAFT_HOME
`),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == argsTerminator {
				args = args[1:]
			}
			l := Launcher{
				Script: inst.ScriptPath(),
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}
			return l.Run(cmd.Context(), args)
		},
	}
}

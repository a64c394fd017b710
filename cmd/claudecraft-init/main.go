package main

import (
	"os"

	"github.com/claudecraft/claudecraft/internal/launcher"
)

// claudecraft-init runs <root>/setup-project.sh, where <root> is the parent of
// the directory holding this binary (or CLAUDECRAFT_HOME when set). All
// arguments are forwarded to the script and its exit status becomes ours.
func main() {
	os.Exit(launcher.Main())
}

package launcher

const (
	ScriptName = "setup-project.sh"
	EnvHome    = "CLAUDECRAFT_HOME"

	argsTerminator = "--"

	ScriptMode = 0o755

	ExitConfig       = 1
	ExitLaunchFailed = 126
	exitSignalBase   = 128
)

package cmds

// GlobalExecutor holds the commands and flags defined by packages at init.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}

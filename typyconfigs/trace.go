package typyconfigs

import (
	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/configs"
	"github.com/reusee/typy/modes"
)

// Trace enables debug logging of parser predictions.
type Trace bool

var traceFlag = cmds.Switch("-trace", "log parser predictions at debug level")

func (Module) Trace(
	loader configs.Loader,
	mode modes.Mode,
) Trace {
	return Trace(*traceFlag ||
		configs.First(loader, "trace", false) ||
		mode == modes.ModeDevelopment)
}

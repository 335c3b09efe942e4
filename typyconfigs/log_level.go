package typyconfigs

import (
	"github.com/reusee/typy/configs"
)

// LogLevel is the configured log level name, empty when not configured.
type LogLevel string

func (Module) LogLevel(
	loader configs.Loader,
) LogLevel {
	return LogLevel(configs.First(loader, "log_level", ""))
}

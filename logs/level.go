package logs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/reusee/typy/cmds"
)

var (
	level = new(slog.LevelVar)
	// set by a level flag
	levelFlagged bool
)

func init() {
	for _, l := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		name := strings.ToLower(l.String())
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
			levelFlagged = true
		}).Desc("set log level to "+name))
	}
}

// SetLevel sets the level of all loggers by name: debug, info, warn or error.
func SetLevel(name string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("bad log level %q: %w", name, err)
	}
	level.Set(l)
	return nil
}

// SetDefaultLevel is SetLevel unless a level flag was given.
func SetDefaultLevel(name string) error {
	if levelFlagged || name == "" {
		return nil
	}
	return SetLevel(name)
}

func Level() slog.Level {
	return level.Level()
}

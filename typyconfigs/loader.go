package typyconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/typy/configs"
	"github.com/reusee/typy/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"typy.cue",
	".typy.cue",
}

// ConfigDirs lists the directories searched for config files, most
// specific first.
type ConfigDirs []string

func (Module) ConfigDirs() (ret ConfigDirs) {
	if dir, err := os.Getwd(); err == nil {
		ret = append(ret, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, dir)
	}
	ret = append(ret, "/etc")
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs ConfigDirs,
) configs.Loader {
	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

package intcodeconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/logs"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"intcode.cue",
	".intcode.cue",
}

// ConfigsLoader looks in the working directory, the user config directory
// and /etc, in that order.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	loader := configs.NewLoader(findConfigFiles(dirs), Schema)
	if paths := loader.Paths(); len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return loader
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				paths = append(paths, path)
			}
		}
	}
	return
}

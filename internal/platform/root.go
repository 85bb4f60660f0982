package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFile is the name of the optional project configuration file.
const ConfigFile = "assetlint.yaml"

// FindRoot looks upwards from startDir for a project root indicator.
// Indicators are: an assetlint.yaml file or a .git directory.
// If found, returns the absolute path to the root.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFile) || hasFile(dir, ".git") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("project root not found from %s", abs)
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

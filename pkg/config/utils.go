package config

import (
	"os"
	"path/filepath"
)

const defaultEnvFile = ".env"

// findEnvFile walks from the working directory up to the filesystem root and
// returns the first regular file called name (".env" when empty).
func findEnvFile(name string) (string, error) {
	if name == "" {
		name = defaultEnvFile
	}
	if filepath.IsAbs(name) {
		return statEnvFile(name)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if path, err := statEnvFile(filepath.Join(dir, name)); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

func statEnvFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", os.ErrNotExist
	}
	return path, nil
}

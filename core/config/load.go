package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads the configuration at path on fsys. The path may name the
// config.yaml itself or the directory holding it.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a directory, look for config.yaml inside it.
	if filepath.Base(path) != ConfigurationName {
		path = filepath.Join(path, ConfigurationName)
	}

	configContents, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	out.configFs = fsys
	return &out, nil
}

// Initialize writes the default configuration into dir, creating the
// directory if needed, and returns the path of the written file. An
// existing configuration is never overwritten.
func Initialize(fsys afero.Fs, dir string) (string, error) {
	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	dest := filepath.Join(dir, ConfigurationName)
	switch _, err := fsys.Stat(dest); {
	case err == nil:
		return "", fmt.Errorf("%s already exists, refusing to overwrite", dest)
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}

	if err := afero.WriteFile(fsys, dest, defaultConfigData, 0600); err != nil {
		return "", err
	}
	return dest, nil
}

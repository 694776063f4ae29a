package envutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

type envFile struct {
	Env map[string]string `yaml:"env" json:"env"`
}

// LoadEnvFile reads the "env" object of a .yml, .yaml or .json file:
//
//	env:
//	  LOG_LEVEL: debug
//	  COMMONS_EPSILON: "0.001"
//
// JSON files are read with the YAML decoder, which accepts them as is.
func LoadEnvFile(path string) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}

	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	if err := yaml.Unmarshal(bts, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadEnvVar, filepath.Base(path), err)
	}

	return out.Env, nil
}

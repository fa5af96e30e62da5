// SPDX-License-Identifier: GPL-2.0-or-later

// Package config loads optional engine settings from a YAML file placed
// next to the binary and applies them on top of the cvar defaults.
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"govoxel/cvar"
)

const Filename = "voxel.yml"

// Path returns where the config file is expected: the directory of the
// executable.
func Path() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locate executable")
	}
	return filepath.Join(filepath.Dir(exe), Filename), nil
}

// Load reads the config file at path and applies it. A missing file is not
// an error, a malformed one is.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read %s", path)
	}
	return Apply(data)
}

// Save writes every archived cvar back to path so changed settings survive
// the next start. The counterpart of Load.
func Save(path string) error {
	values := make(map[string]string)
	for _, cv := range cvar.All() {
		if cv.Archive() {
			values[cv.Name()] = cv.String()
		}
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}

// Apply parses YAML config data and writes every known key into its cvar.
// Unknown keys are logged and skipped so old configs survive renames.
func Apply(data []byte) error {
	var values map[string]yaml.Node
	if err := yaml.Unmarshal(data, &values); err != nil {
		return errors.Wrap(err, "parse config")
	}
	for name, node := range values {
		if node.Kind != yaml.ScalarNode {
			log.Printf("Config key %q is not a scalar, ignored", name)
			continue
		}
		cv, ok := cvar.Get(name)
		if !ok {
			log.Printf("Unknown config key %q ignored", name)
			continue
		}
		cv.SetByString(node.Value)
	}
	return nil
}

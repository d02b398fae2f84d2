// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package siteconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the site configuration file at path and overlays it on the
// built-in defaults. Scalars and lists present in the file replace the
// default values, map entries extend them. An empty path or a missing file
// yields the pure defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to get file info for site configuration file path %s: %v", path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the site configuration file path %s is a directory, instead of a file", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse site configuration file %s: %v", path, err)
	}
	return config, nil
}

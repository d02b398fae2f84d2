// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is the tool configuration file name in the docsite home directory
	DefaultConfigFileName = "config"
	// DocsiteHomeDir is the docsite home directory name, relative to the user home directory
	DocsiteHomeDir = ".docsite"
	// DocsiteConfigEnv points to an alternative tool configuration file
	DocsiteConfigEnv = "DOCSITECONFIG"
)

// Loader loads the tool configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader loads the configuration file pointed to by the
// DOCSITECONFIG environment variable, falling back to the file in the docsite
// home directory. A missing file yields an empty configuration.
type DefaultConfigurationLoader struct{}

// Load implements Loader
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(DocsiteConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", DocsiteConfigEnv)
		}
		return load(configFilePath)
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}
	return load(filepath.Join(userHomeDir, DocsiteHomeDir, DefaultConfigFileName))
}

func load(configFilePath string) (*Config, error) {
	config := &Config{}
	stat, err := os.Stat(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is a directory, instead of a file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, err
	}
	return config, nil
}

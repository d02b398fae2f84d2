// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package configuration

// Config is the docsite tool configuration, loaded from the user's
// configuration file. It carries operator-level settings that do not belong
// in the site configuration: credentials and the response cache location.
type Config struct {
	// CacheHome overrides the default link-check response cache directory
	CacheHome *string `yaml:"cacheHome,omitempty"`
	// Credentials hold per-host access tokens used during link validation
	Credentials []*Credentials `yaml:"credentials,omitempty"`
}

// Credentials holds repository credential data
type Credentials struct {
	Host       string  `yaml:"host"`
	Username   *string `yaml:"username,omitempty"`
	OAuthToken *string `yaml:"oAuthToken,omitempty"`
}

// OAuthTokenFor returns the configured token for the host, or the empty
// string when none is configured
func (c *Config) OAuthTokenFor(host string) string {
	for _, cred := range c.Credentials {
		if cred != nil && cred.Host == host && cred.OAuthToken != nil {
			return *cred.OAuthToken
		}
	}
	return ""
}

// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package app

// options are the root command flags unmarshalled from viper
type options struct {
	SourceRoot             string `mapstructure:"source"`
	DestinationPath        string `mapstructure:"destination"`
	SiteConfigPath         string `mapstructure:"site-config"`
	FailFast               bool   `mapstructure:"fail-fast"`
	DryRun                 bool   `mapstructure:"dry-run"`
	ValidationWorkersCount int    `mapstructure:"validation-workers"`
	SkipLinkValidation     bool   `mapstructure:"skip-link-validation"`
	SkipAssets             bool   `mapstructure:"skip-assets"`
	GithubOAuthToken       string `mapstructure:"github-oauth-token"`
	UseGitRef              bool   `mapstructure:"use-git-ref"`
	CacheDir               string `mapstructure:"cache-dir"`
}

// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package app

import (
	"github.com/spf13/cobra"
)

func configureFlags(command *cobra.Command) {
	command.Flags().StringP("source", "s", ".",
		"Documentation sources root directory.")
	_ = vip.BindPFlag("source", command.Flags().Lookup("source"))

	command.Flags().StringP("destination", "d", "_build",
		"Destination path for the staged output tree.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().String("site-config", "",
		"Path to the site configuration file overlaying the built-in defaults.")
	_ = vip.BindPFlag("site-config", command.Flags().Lookup("site-config"))

	command.Flags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
	_ = vip.BindPFlag("fail-fast", command.Flags().Lookup("fail-fast"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().Int("validation-workers", 50,
		"Number of parallel workers to validate the documentation links.")
	_ = vip.BindPFlag("validation-workers", command.Flags().Lookup("validation-workers"))

	command.Flags().Bool("skip-link-validation", false,
		"Links validation will be skipped.")
	_ = vip.BindPFlag("skip-link-validation", command.Flags().Lookup("skip-link-validation"))

	command.Flags().Bool("skip-assets", false,
		"Staging of extra static files will be skipped.")
	_ = vip.BindPFlag("skip-assets", command.Flags().Lookup("skip-assets"))

	command.Flags().String("github-oauth-token", "",
		"GitHub personal token authorizing link validation requests against github.com. Overrides the token from the tool configuration file.")
	_ = vip.BindPFlag("github-oauth-token", command.Flags().Lookup("github-oauth-token"))

	command.Flags().Bool("use-git-ref", false,
		"Resolve the release ref name from the local repository when CI_COMMIT_REF_NAME is unset.")
	_ = vip.BindPFlag("use-git-ref", command.Flags().Lookup("use-git-ref"))

	command.Flags().String("cache-dir", "",
		"Cache directory for the link-check response cache. Defaults to $HOME/.docsite/cache.")
	_ = vip.BindPFlag("cache-dir", command.Flags().Lookup("cache-dir"))
}

// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package gitinfo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// BranchName resolves the name of the checked-out branch of the repository
// containing dir. Used as the release ref name for builds outside of CI when
// the operator opts in; the repository discovery walks up from dir.
func BranchName(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %s: %v", dir, err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD of repository at %s: %v", dir, err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD of repository at %s is not on a branch", dir)
	}
	return head.Name().Short(), nil
}

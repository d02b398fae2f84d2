// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchName(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("# Tezos\n"), 0644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("index.md")
	require.NoError(t, err)
	_, err = wt.Commit("add index", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "docsite test",
			Email: "contact@nomadic-labs.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	name, err := BranchName(dir)
	require.NoError(t, err)
	assert.Equal(t, "master", name)

	// discovery walks up from nested directories
	nested := filepath.Join(dir, "docs", "alpha")
	require.NoError(t, os.MkdirAll(nested, os.ModePerm))
	name, err = BranchName(nested)
	require.NoError(t, err)
	assert.Equal(t, "master", name)
}

func TestBranchNameNoRepository(t *testing.T) {
	_, err := BranchName(t.TempDir())
	assert.Error(t, err)
}

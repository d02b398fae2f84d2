// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package siteconfig

import (
	"os"
	"time"
)

const (
	// RefNameEnv is the CI-provided branch or tag name the documentation is built from
	RefNameEnv = "CI_COMMIT_REF_NAME"
	// DefaultRefName labels builds outside of CI
	DefaultRefName = "local"

	releaseTimeFormat = " 2006/01/02 15:04)"
)

// RefName returns the source-control reference name the documentation is
// built from: the value of CI_COMMIT_REF_NAME, or "local" when unset.
func RefName() string {
	if ref, ok := os.LookupEnv(RefNameEnv); ok {
		return ref
	}
	return DefaultRefName
}

// Release assembles the human-readable build identifier shown in the rendered
// site, e.g. "(master branch,  2023/06/14 18:04)".
func Release(refName string, now time.Time) string {
	return "(" + refName + " branch, " + now.Format(releaseTimeFormat)
}

// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package version

// Version is a global variable which is set during compile time via -ldflags in the
// `go build` process. It stores the version of docsite, usually the git tag or
// branch the binary was built from.
var Version = "binary was not built properly"

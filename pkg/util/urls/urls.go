// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package urls

import (
	"net/url"
	"strings"
)

// Unify strips query, fragment and user info from a URL, producing the
// canonical form used to deduplicate link destinations.
func Unify(u *url.URL) string {
	_u := &url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   u.Path,
	}
	return _u.String()
}

// IsAbsolute reports whether the link destination is an absolute http(s) URL.
func IsAbsolute(dest string) bool {
	return strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://")
}

// Ext returns the resource name extension used by a URL path.
// The extension is the suffix beginning at the final dot in the final
// element of path; it is empty if there is no dot.
func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return ""
}

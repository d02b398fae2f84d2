// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package siteconfig

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// RedirectRule is a compiled redirect-allowlist entry: a redirect from a URL
// matching From to a location matching To is expected.
type RedirectRule struct {
	From *regexp.Regexp
	To   *regexp.Regexp
}

// Validate checks the configuration data integrity: exclude patterns are
// valid path globs, link-check patterns compile as regular expressions, and
// no extra static file is simultaneously declared and excluded. All problems
// are reported, not only the first one.
func (c *Config) Validate() error {
	var errs *multierror.Error
	for _, pattern := range c.ExcludePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid exclude pattern %q: %v", pattern, err))
		}
	}
	if _, err := c.Linkcheck.CompileIgnore(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, err := c.Linkcheck.CompileAllowedRedirects(); err != nil {
		errs = multierror.Append(errs, err)
	}
	for _, file := range c.extraFiles() {
		if c.Excluded(file) {
			errs = multierror.Append(errs, fmt.Errorf("file %q is both declared as extra and excluded", file))
		}
	}
	return errs.ErrorOrNil()
}

// Excluded reports whether the path, relative to the source root, matches an
// exclude pattern. A pattern matches the whole path or any of its leading
// directory segments, so excluding "_build" also excludes "_build/html".
func (c *Config) Excluded(path string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range c.ExcludePatterns {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
		segments := strings.Split(path, "/")
		for i := 1; i < len(segments); i++ {
			if ok, err := filepath.Match(pattern, strings.Join(segments[:i], "/")); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// CompileIgnore compiles the ignore list. Patterns are matched at the
// beginning of the link destination, so entries without anchors behave as
// literal prefixes.
func (l *Linkcheck) CompileIgnore() ([]*regexp.Regexp, error) {
	var errs *multierror.Error
	compiled := make([]*regexp.Regexp, 0, len(l.Ignore))
	for _, pattern := range l.Ignore {
		rgx, err := compileAnchored(pattern)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid linkcheck ignore pattern %q: %v", pattern, err))
			continue
		}
		compiled = append(compiled, rgx)
	}
	return compiled, errs.ErrorOrNil()
}

// CompileAllowedRedirects compiles the redirect allowlist into rules.
func (l *Linkcheck) CompileAllowedRedirects() ([]RedirectRule, error) {
	var errs *multierror.Error
	rules := make([]RedirectRule, 0, len(l.AllowedRedirects))
	for from, to := range l.AllowedRedirects {
		fromRgx, err := compileAnchored(from)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid allowed redirect source pattern %q: %v", from, err))
			continue
		}
		toRgx, err := compileAnchored(to)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("invalid allowed redirect target pattern %q: %v", to, err))
			continue
		}
		rules = append(rules, RedirectRule{From: fromRgx, To: toRgx})
	}
	return rules, errs.ErrorOrNil()
}

func (c *Config) extraFiles() []string {
	files := make([]string, 0, len(c.HTML.ExtraFiles)+len(c.HTML.CSSFiles)+len(c.HTML.JSFiles))
	files = append(files, c.HTML.ExtraFiles...)
	for _, f := range c.HTML.CSSFiles {
		files = append(files, filepath.Join(c.HTML.StaticPath, f))
	}
	for _, f := range c.HTML.JSFiles {
		files = append(files, filepath.Join(c.HTML.StaticPath, f))
	}
	return files
}

// compileAnchored anchors the pattern at the beginning of the matched string
func compileAnchored(pattern string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^(?:" + pattern + ")"
	}
	return regexp.Compile(pattern)
}

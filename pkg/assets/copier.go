// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/nomadic-labs/docsite/pkg/siteconfig"
	"github.com/nomadic-labs/docsite/pkg/writers"
	"k8s.io/klog/v2"
)

// staticDir is where the renderer expects custom static files in the output tree
const staticDir = "_static"

// Copier stages the configured extra raw files and static assets from the
// documentation source tree into the output tree, verbatim.
type Copier struct {
	// SourceRoot is the documentation source directory
	SourceRoot string
	// Config supplies the extra file and static asset lists
	Config *siteconfig.Config
	// Writer receives the staged files
	Writer writers.Writer
}

// Copy stages all configured files. It is fault tolerant: all files are
// attempted and the failures are aggregated.
func (c *Copier) Copy() error {
	var errs *multierror.Error
	for _, file := range c.Config.HTML.ExtraFiles {
		if err := c.copyFile(file, filepath.Dir(file)); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	for _, file := range c.Config.HTML.CSSFiles {
		source := filepath.Join(c.Config.HTML.StaticPath, file)
		if err := c.copyFile(source, filepath.Join(staticDir, filepath.Dir(file))); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	for _, file := range c.Config.HTML.JSFiles {
		source := filepath.Join(c.Config.HTML.StaticPath, file)
		if err := c.copyFile(source, filepath.Join(staticDir, filepath.Dir(file))); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// copyFile reads source, relative to the source root, and writes it to the
// destination directory path, relative to the output root.
func (c *Copier) copyFile(source, path string) error {
	if c.Config.Excluded(source) {
		return fmt.Errorf("extra file %q matches an exclude pattern", source)
	}
	blob, err := os.ReadFile(filepath.Join(c.SourceRoot, source))
	if err != nil {
		return fmt.Errorf("failed to read extra file %q: %v", source, err)
	}
	if path == "." {
		path = ""
	}
	name := filepath.Base(source)
	klog.V(6).Infof("staging %s -> %s\n", source, filepath.Join(path, name))
	return c.Writer.Write(name, path, blob)
}

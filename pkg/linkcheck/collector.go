// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package linkcheck

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/nomadic-labs/docsite/pkg/siteconfig"
	"github.com/nomadic-labs/docsite/pkg/util/urls"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"k8s.io/klog/v2"
)

// Link is an absolute link destination found in a documentation source file
type Link struct {
	URL               *url.URL
	Destination       string
	ContentSourcePath string
}

// parser extension for GitHub Flavored Markdown & front matter support
var gmParser = goldmark.New(goldmark.WithExtensions(extension.GFM, meta.Meta))

// Collect walks the documentation sources under root and extracts the
// absolute link destinations to validate. Files and directories matching the
// exclude patterns, the templates and static directories, and documents whose
// front matter sets "linkcheck: false" are skipped.
func Collect(root string, cfg *siteconfig.Config) ([]Link, error) {
	var links []Link
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if cfg.Excluded(rel) || rel == cfg.TemplatesPath || rel == cfg.HTML.StaticPath {
				return filepath.SkipDir
			}
			return nil
		}
		if cfg.Excluded(rel) || !strings.HasSuffix(d.Name(), cfg.SourceSuffix) {
			return nil
		}
		documentLinks, err := collectDocument(path, rel)
		if err != nil {
			return err
		}
		links = append(links, documentLinks...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect links under %s: %v", root, err)
	}
	return links, nil
}

// collectDocument parses one source file and extracts its absolute links
func collectDocument(path, rel string) ([]Link, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	context := parser.NewContext()
	doc := gmParser.Parser().Parse(text.NewReader(source), parser.WithContext(context))
	frontMatter, err := meta.TryGet(context)
	if err != nil {
		klog.Warningf("malformed front matter in %s: %v\n", rel, err)
	}
	if enabled, ok := frontMatter["linkcheck"].(bool); ok && !enabled {
		klog.V(6).Infof("link check disabled for %s\n", rel)
		return nil, nil
	}
	var links []Link
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		var destination string
		switch t := n.(type) {
		case *ast.Link:
			destination = string(t.Destination)
		case *ast.AutoLink:
			destination = string(t.URL(source))
		case *ast.Image:
			destination = string(t.Destination)
		default:
			return ast.WalkContinue, nil
		}
		if !urls.IsAbsolute(destination) {
			return ast.WalkContinue, nil
		}
		linkURL, err := url.Parse(destination)
		if err != nil {
			klog.Warningf("malformed link destination %s in %s: %v\n", destination, rel, err)
			return ast.WalkContinue, nil
		}
		links = append(links, Link{
			URL:               linkURL,
			Destination:       destination,
			ContentSourcePath: rel,
		})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

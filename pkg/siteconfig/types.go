// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package siteconfig

// Config holds the documentation site build configuration: project metadata,
// source layout, theme options, output descriptors and link-check rules.
// The zero value is not usable, start from Default or Load.
type Config struct {
	// Project is the documentation project name
	Project string `yaml:"project,omitempty"`
	// Author is the project author string used in generated outputs
	Author string `yaml:"author,omitempty"`
	// Copyright is the copyright notice rendered in page footers
	Copyright string `yaml:"copyright,omitempty"`
	// SourceSuffix is the file name suffix of documentation sources
	SourceSuffix string `yaml:"sourceSuffix,omitempty"`
	// MasterDoc is the name of the root document, without suffix
	MasterDoc string `yaml:"masterDoc,omitempty"`
	// TemplatesPath is the directory with page templates, relative to the source root
	TemplatesPath string `yaml:"templatesPath,omitempty"`
	// ExcludePatterns are path globs, relative to the source root, matching
	// files and directories ignored when looking for source files
	ExcludePatterns []string `yaml:"excludePatterns,omitempty"`
	// Theme selects and customizes the visual template of the rendered site
	Theme Theme `yaml:"theme,omitempty"`
	// HTML holds options of the HTML output
	HTML HTML `yaml:"html,omitempty"`
	// Latex descriptors group the document tree into LaTeX targets
	Latex []TargetDocument `yaml:"latex,omitempty"`
	// ManPages descriptors, one entry per manual page
	ManPages []ManPage `yaml:"manPages,omitempty"`
	// Texinfo descriptors group the document tree into Texinfo targets
	Texinfo []TexinfoDocument `yaml:"texinfo,omitempty"`
	// Linkcheck holds the link validation rules
	Linkcheck Linkcheck `yaml:"linkcheck,omitempty"`
}

// Theme is the visual template selection and its options
type Theme struct {
	Name string `yaml:"name,omitempty"`
	// LogoOnly renders only the logo in the sidebar header, without the project name
	LogoOnly bool `yaml:"logoOnly,omitempty"`
	// StickyNavigation keeps the sidebar pinned while scrolling
	StickyNavigation bool `yaml:"stickyNavigation,omitempty"`
	Logo             string `yaml:"logo,omitempty"`
	Favicon          string `yaml:"favicon,omitempty"`
}

// HTML holds HTML output options
type HTML struct {
	// StaticPath is the directory with custom static files, copied after the
	// builtin static files so same-named files override them
	StaticPath string `yaml:"staticPath,omitempty"`
	// CSSFiles are extra style sheets, relative to StaticPath
	CSSFiles []string `yaml:"cssFiles,omitempty"`
	// JSFiles are extra scripts, relative to StaticPath
	JSFiles []string `yaml:"jsFiles,omitempty"`
	// ExtraFiles are copied verbatim to the output root
	ExtraFiles []string `yaml:"extraFiles,omitempty"`
	// HelpBasename is the output file base name for the HTML help builder
	HelpBasename string `yaml:"helpBasename,omitempty"`
	// DomainIndices enables generation of domain-specific indices
	DomainIndices bool `yaml:"domainIndices,omitempty"`
}

// TargetDocument describes a LaTeX build target
type TargetDocument struct {
	// StartDoc is the source start file, without suffix
	StartDoc   string `yaml:"startDoc"`
	TargetName string `yaml:"targetName"`
	Title      string `yaml:"title"`
	Author     string `yaml:"author"`
	// DocumentClass is one of "howto", "manual" or a custom class
	DocumentClass string `yaml:"documentClass"`
}

// ManPage describes a manual page build target
type ManPage struct {
	StartDoc    string   `yaml:"startDoc"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Authors     []string `yaml:"authors"`
	Section     int      `yaml:"section"`
}

// TexinfoDocument describes a Texinfo build target
type TexinfoDocument struct {
	StartDoc    string `yaml:"startDoc"`
	TargetName  string `yaml:"targetName"`
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	DirEntry    string `yaml:"dirEntry"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// Linkcheck holds the link validation rules
type Linkcheck struct {
	// Anchors enables validation of URL fragments against the target page content
	Anchors bool `yaml:"anchors,omitempty"`
	// Ignore lists link destination patterns excluded from validation.
	// Entries are regular expressions matched at the beginning of the
	// destination, so plain strings act as literal prefixes.
	Ignore []string `yaml:"ignore,omitempty"`
	// AllowedRedirects maps a source URL pattern to a target URL pattern.
	// A redirect from a destination matching the key to a location matching
	// the value is expected and not reported as a failure.
	AllowedRedirects map[string]string `yaml:"allowedRedirects,omitempty"`
}

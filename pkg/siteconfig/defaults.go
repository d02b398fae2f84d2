// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package siteconfig

// Default returns the built-in configuration of the Tezos documentation site.
// A site.yaml file loaded with Load overlays these values.
func Default() *Config {
	return &Config{
		Project:       "Tezos",
		Author:        "Nomadic Labs <contact@nomadic-labs.com>",
		Copyright:     "2018-2023, Nomadic Labs <contact@nomadic-labs.com>",
		SourceSuffix:  ".md",
		MasterDoc:     "index",
		TemplatesPath: "_templates",
		ExcludePatterns: []string{
			".venv",
			"_build",
			"Thumbs.db",
			".DS_Store",
			"doc_gen",
			"oxford",
		},
		Theme: Theme{
			Name:             "rtd",
			LogoOnly:         true,
			StickyNavigation: false,
			Logo:             "logo.svg",
			Favicon:          "favicon.ico",
		},
		HTML: HTML{
			StaticPath: "_static",
			CSSFiles:   []string{"css/custom.css"},
			JSFiles:    []string{"js/custom.js"},
			ExtraFiles: []string{
				"404.html",
				"_redirects",
				// images that are only referenced from raw HTML directives
				// and would not be picked up by the builder otherwise
				"images/building_on_tezos_5.png",
				"images/contributing_to_octez_6.png",
				"images/discover_tezos_1.png",
				"images/getting_started_2.png",
				"images/understanding_octez_4.png",
				"images/using_octez_3.png",
			},
			HelpBasename:  "Tezosdoc",
			DomainIndices: false,
		},
		Latex: []TargetDocument{
			{
				StartDoc:      "index",
				TargetName:    "Tezos.tex",
				Title:         "Tezos Documentation",
				Author:        "Nomadic Labs <contact@nomadic-labs.com>",
				DocumentClass: "manual",
			},
		},
		ManPages: []ManPage{
			{
				StartDoc:    "index",
				Name:        "tezos",
				Description: "Tezos Documentation",
				Authors:     []string{"Nomadic Labs <contact@nomadic-labs.com>"},
				Section:     1,
			},
		},
		Texinfo: []TexinfoDocument{
			{
				StartDoc:    "index",
				TargetName:  "Tezos",
				Title:       "Tezos Documentation",
				Author:      "Nomadic Labs <contact@nomadic-labs.com>",
				DirEntry:    "Tezos",
				Description: "One line description of project.",
				Category:    "Miscellaneous",
			},
		},
		Linkcheck: Linkcheck{
			Anchors: false,
			Ignore: []string{
				// links which may fail for lack of access rights
				`https://gitlab.com/nomadic-labs/tezos/-/merge_requests/`,
				`http(s)?://localhost:\d+/?`,
				// relative destinations outside the source root are resolved
				// against the published site and generate false positives
				`^\.\./`,
				// flaky servers, to remove one day if they get more predictable
				`^https://opentezos\.com/`,
				`^https://crates.io/crates/tezos-smart-rollup`,
			},
			AllowedRedirects: map[string]string{
				// innocuous redirections (redirected with See Other / Found)
				`https://www\.sphinx-doc\.org/.*`:                               `https://www\.sphinx-doc\.org/en/master/.*`,
				`https://tools\.ietf\.org/html/.*`:                              `https://datatracker\.ietf\.org/doc/.*`,
				`https://ocaml\.org/.*`:                                         `https://v2\.ocaml\.org/.*`,
				`https://github\.com/serokell/tezos-packaging/releases/latest`:  `https://github\.com/serokell/tezos-packaging/releases/tag/.*`,
				`https://www.reddit.com/r/tezos/`:                               `https://www.reddit.com/r/tezos/[?]rdt=[0-9]+`,
				// permanent redirections, maybe fix one day
				`https://bitheap\.org/cram/`: `https://github\.com/aiiie/cram`,
			},
		},
	}
}

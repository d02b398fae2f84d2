// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package siteconfig_test

import (
	"os"
	"strings"
	"time"

	"github.com/nomadic-labs/docsite/pkg/siteconfig"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Load", func() {
	var (
		path string
		cfg  *siteconfig.Config
		err  error
	)
	JustBeforeEach(func() {
		cfg, err = siteconfig.Load(path)
	})
	When("path is empty", func() {
		BeforeEach(func() {
			path = ""
		})
		It("returns the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(siteconfig.Default()))
		})
	})
	When("file is missing", func() {
		BeforeEach(func() {
			path = "testdata/missing.yaml"
		})
		It("returns the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(siteconfig.Default()))
		})
	})
	When("path is a directory", func() {
		BeforeEach(func() {
			path = "testdata"
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("directory"))
			Expect(cfg).To(BeNil())
		})
	})
	When("overlay file exists", func() {
		BeforeEach(func() {
			path = "testdata/site.yaml"
		})
		It("replaces lists and scalars present in the file", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Project).To(Equal("Tezos"))
			Expect(cfg.ExcludePatterns).To(Equal([]string{"_build", "scratch"}))
			Expect(cfg.Theme.LogoOnly).To(BeFalse())
			Expect(cfg.Theme.StickyNavigation).To(BeTrue())
			Expect(cfg.HTML.CSSFiles).To(Equal([]string{"css/custom.css", "css/print.css"}))
			Expect(cfg.Linkcheck.Anchors).To(BeTrue())
			Expect(cfg.Linkcheck.Ignore).To(Equal([]string{`^https://example\.org/private/`}))
		})
		It("keeps defaults the file does not mention", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Author).To(Equal(siteconfig.Default().Author))
			Expect(cfg.MasterDoc).To(Equal("index"))
			Expect(cfg.HTML.HelpBasename).To(Equal("Tezosdoc"))
			Expect(cfg.Latex).To(Equal(siteconfig.Default().Latex))
		})
		It("extends the redirect allowlist", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Linkcheck.AllowedRedirects).To(HaveKeyWithValue(
				`https://tezos\.com/.*`, `https://tezos\.com/en/.*`))
			Expect(cfg.Linkcheck.AllowedRedirects).To(HaveKeyWithValue(
				`https://ocaml\.org/.*`, `https://v2\.ocaml\.org/.*`))
		})
		It("is idempotent for the same input", func() {
			Expect(err).NotTo(HaveOccurred())
			again, err := siteconfig.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(cfg))
		})
	})
})

var _ = Describe("Release", func() {
	var (
		envWasSet bool
		envValue  string
	)
	BeforeEach(func() {
		envValue, envWasSet = os.LookupEnv(siteconfig.RefNameEnv)
	})
	AfterEach(func() {
		if envWasSet {
			Expect(os.Setenv(siteconfig.RefNameEnv, envValue)).To(Succeed())
		} else {
			Expect(os.Unsetenv(siteconfig.RefNameEnv)).To(Succeed())
		}
	})
	When("the CI ref name is set", func() {
		BeforeEach(func() {
			Expect(os.Setenv(siteconfig.RefNameEnv, "master")).To(Succeed())
		})
		It("uses the ref name", func() {
			ref := siteconfig.RefName()
			Expect(ref).To(Equal("master"))
			release := siteconfig.Release(ref, time.Date(2023, 6, 14, 18, 4, 0, 0, time.UTC))
			Expect(strings.HasPrefix(release, "(")).To(BeTrue())
			Expect(release).To(Equal("(master branch,  2023/06/14 18:04)"))
		})
	})
	When("the CI ref name is unset", func() {
		BeforeEach(func() {
			Expect(os.Unsetenv(siteconfig.RefNameEnv)).To(Succeed())
		})
		It("falls back to local", func() {
			ref := siteconfig.RefName()
			Expect(ref).To(Equal("local"))
			release := siteconfig.Release(ref, time.Date(2023, 6, 14, 18, 4, 0, 0, time.UTC))
			Expect(release).To(Equal("(local branch,  2023/06/14 18:04)"))
		})
	})
})

var _ = Describe("Validate", func() {
	var cfg *siteconfig.Config
	BeforeEach(func() {
		cfg = siteconfig.Default()
	})
	It("accepts the defaults", func() {
		Expect(cfg.Validate()).To(Succeed())
	})
	When("an exclude pattern is a malformed glob", func() {
		BeforeEach(func() {
			cfg.ExcludePatterns = append(cfg.ExcludePatterns, "[oxford")
		})
		It("errors", func() {
			err := cfg.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid exclude pattern"))
		})
	})
	When("an ignore pattern is a malformed regexp", func() {
		BeforeEach(func() {
			cfg.Linkcheck.Ignore = append(cfg.Linkcheck.Ignore, `https://(unclosed`)
		})
		It("errors", func() {
			err := cfg.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid linkcheck ignore pattern"))
		})
	})
	When("a redirect pattern is a malformed regexp", func() {
		BeforeEach(func() {
			cfg.Linkcheck.AllowedRedirects[`https://ok\.example/.*`] = `https://(unclosed`
		})
		It("errors", func() {
			err := cfg.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid allowed redirect target pattern"))
		})
	})
	When("an extra file is also excluded", func() {
		BeforeEach(func() {
			cfg.ExcludePatterns = append(cfg.ExcludePatterns, "404.html")
		})
		It("errors", func() {
			err := cfg.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("both declared as extra and excluded"))
		})
	})
	It("reports all problems at once", func() {
		cfg.ExcludePatterns = append(cfg.ExcludePatterns, "[oxford", "404.html")
		err := cfg.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("invalid exclude pattern"))
		Expect(err.Error()).To(ContainSubstring("both declared as extra and excluded"))
	})
})

var _ = Describe("Excluded", func() {
	var cfg *siteconfig.Config
	BeforeEach(func() {
		cfg = siteconfig.Default()
	})
	It("matches whole paths", func() {
		Expect(cfg.Excluded("Thumbs.db")).To(BeTrue())
		Expect(cfg.Excluded(".DS_Store")).To(BeTrue())
	})
	It("matches leading directory segments", func() {
		Expect(cfg.Excluded("_build/html/index.html")).To(BeTrue())
		Expect(cfg.Excluded("oxford/protocol.md")).To(BeTrue())
	})
	It("does not match unrelated paths", func() {
		Expect(cfg.Excluded("index.md")).To(BeFalse())
		Expect(cfg.Excluded("images/getting_started_2.png")).To(BeFalse())
	})
})

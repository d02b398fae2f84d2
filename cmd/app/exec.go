// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nomadic-labs/docsite/cmd/configuration"
	"github.com/nomadic-labs/docsite/pkg/assets"
	"github.com/nomadic-labs/docsite/pkg/gitinfo"
	"github.com/nomadic-labs/docsite/pkg/linkcheck"
	"github.com/nomadic-labs/docsite/pkg/siteconfig"
	"github.com/nomadic-labs/docsite/pkg/writers"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func exec(ctx context.Context, vip *viper.Viper) error {
	var options options
	if err := vip.Unmarshal(&options); err != nil {
		return err
	}
	toolCfg, err := new(configuration.DefaultConfigurationLoader).Load()
	if err != nil {
		return err
	}
	cfg, err := siteconfig.Load(options.SiteConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid site configuration: %v", err)
	}

	refName := siteconfig.RefName()
	if refName == siteconfig.DefaultRefName && options.UseGitRef {
		if branch, branchErr := gitinfo.BranchName(options.SourceRoot); branchErr == nil {
			refName = branch
		} else {
			klog.Warningf("failed to resolve git ref name, keeping %q: %v\n", refName, branchErr)
		}
	}
	release := siteconfig.Release(refName, time.Now())
	klog.Infof("%s documentation %s\n", cfg.Project, release)
	klog.Infof("Sources: %s\n", options.SourceRoot)
	klog.Infof("Output dir: %s\n", options.DestinationPath)

	var (
		writer        writers.Writer
		dryRunWriters writers.DryRunWriter
	)
	if options.DryRun {
		dryRunWriters = writers.NewDryRunWritersFactory(os.Stdout)
		writer = dryRunWriters.GetWriter(options.DestinationPath)
	} else {
		writer = &writers.FSWriter{Root: options.DestinationPath}
	}

	if !options.SkipAssets {
		copier := &assets.Copier{
			SourceRoot: options.SourceRoot,
			Config:     cfg,
			Writer:     writer,
		}
		if err := copier.Copy(); err != nil {
			if options.FailFast {
				return err
			}
			klog.Warningf("staging extra files: %v\n", err)
		}
	}

	if !options.SkipLinkValidation {
		if err := checkLinks(ctx, &options, toolCfg, cfg); err != nil {
			return err
		}
	}

	if dryRunWriters != nil && !dryRunWriters.Flush() {
		return fmt.Errorf("failed to write the dry-run projection")
	}
	return nil
}

func checkLinks(ctx context.Context, options *options, toolCfg *configuration.Config, cfg *siteconfig.Config) error {
	token := options.GithubOAuthToken
	if token == "" {
		token = toolCfg.OAuthTokenFor("github.com")
	}
	clients := linkcheck.NewClientRouter(ctx, cacheHomeDir(options, toolCfg), token)

	links, err := linkcheck.Collect(options.SourceRoot, cfg)
	if err != nil {
		return err
	}
	klog.Infof("collected %d links\n", len(links))

	wg := &sync.WaitGroup{}
	validator, worker, queue, err := linkcheck.New(options.ValidationWorkersCount, options.FailFast, wg, clients, cfg)
	if err != nil {
		return err
	}
	queue.Start(ctx)
	for _, link := range links {
		validator.ValidateLink(link.URL, link.Destination, link.ContentSourcePath)
	}
	wg.Wait()
	queue.Stop()
	clients.LogRateLimits(ctx)

	report := linkcheck.NewReport(queue.GetProcessedTasksCount(), worker.Warnings())
	fmt.Print(report)
	if errList := queue.GetErrorList(); errList != nil {
		return errList.ErrorOrNil()
	}
	if options.FailFast && !report.Ok() {
		return fmt.Errorf("link check found %d problems", len(report.Warnings))
	}
	return nil
}

// cacheDirEnv overrides the link-check response cache location
const cacheDirEnv = "DOCSITE_CACHE_DIR"

// cacheHomeDir resolves the cache location: the environment variable wins,
// then the --cache-dir flag, then the tool configuration file.
func cacheHomeDir(options *options, toolCfg *configuration.Config) string {
	if cacheDir, found := os.LookupEnv(cacheDirEnv); found {
		if cacheDir == "" {
			klog.Warningf("%s is set to empty string, using the current dir for the cache\n", cacheDirEnv)
		}
		return cacheDir
	}
	if options.CacheDir != "" {
		return options.CacheDir
	}
	if toolCfg != nil && toolCfg.CacheHome != nil {
		return *toolCfg.CacheHome
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	// default value $HOME/.docsite/cache
	return filepath.Join(userHomeDir, configuration.DocsiteHomeDir, "cache")
}

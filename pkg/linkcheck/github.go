// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package linkcheck

import (
	"context"
	"net/http"
	"time"

	"github.com/google/go-github/v43/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/nomadic-labs/docsite/pkg/httpclient"
	"github.com/peterbourgon/diskv"
	"golang.org/x/oauth2"
	"k8s.io/klog/v2"
)

const requestTimeout = 30 * time.Second

// Router routes github.com requests to an authenticated client to avoid
// anonymous rate limits and serves everything else with the base client
type Router struct {
	base   httpclient.Client
	github httpclient.Client
	ghAPI  *github.Client
}

// NewClientRouter builds the link-check HTTP clients. When cacheDir is not
// empty, responses are cached on disk between runs. When githubToken is not
// empty, requests to github.com carry the OAuth token.
func NewClientRouter(ctx context.Context, cacheDir, githubToken string) *Router {
	transport := http.DefaultTransport
	if cacheDir != "" {
		d := diskv.New(diskv.Options{
			BasePath:     cacheDir,
			CacheSizeMax: 100 * 1024 * 1024,
		})
		cachedTransport := httpcache.NewTransport(diskcache.NewWithDiskv(d))
		cachedTransport.Transport = transport
		transport = cachedTransport
	}
	base := &http.Client{
		Transport: transport,
		Timeout:   requestTimeout,
	}
	router := &Router{base: base, github: base}
	if githubToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: githubToken})
		oauthCtx := context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: transport})
		ghClient := oauth2.NewClient(oauthCtx, ts)
		ghClient.Timeout = requestTimeout
		router.github = ghClient
		router.ghAPI = github.NewClient(ghClient)
	}
	return router
}

// ClientFor implements ClientRouter
func (r *Router) ClientFor(host string) httpclient.Client {
	if host == "github.com" || host == "api.github.com" || host == "raw.githubusercontent.com" {
		return r.github
	}
	return r.base
}

// LogRateLimits reports the remaining GitHub API quota, useful to diagnose
// 429/403 validation noise on large documentation sets
func (r *Router) LogRateLimits(ctx context.Context) {
	if r.ghAPI == nil {
		return
	}
	limits, _, err := r.ghAPI.RateLimits(ctx)
	if err != nil {
		klog.Warningf("failed to get GitHub rate limits: %v\n", err)
		return
	}
	if limits.Core != nil {
		klog.Infof("GitHub API rate remaining %d of %d, resets at %s\n",
			limits.Core.Remaining, limits.Core.Limit, limits.Core.Reset)
	}
}

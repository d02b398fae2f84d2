// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package linkcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/nomadic-labs/docsite/pkg/httpclient"
	"github.com/nomadic-labs/docsite/pkg/siteconfig"
	"github.com/nomadic-labs/docsite/pkg/util/urls"
	"golang.org/x/net/html"
	"k8s.io/klog/v2"
)

// retry pause seconds on 429 responses
var retryIntervals = []int{1, 5, 10, 20}

// ValidatorWorker checks that link destinations are reachable, honoring the
// configured ignore patterns and redirect allowlist
type ValidatorWorker struct {
	clients      ClientRouter
	ignore       []*regexp.Regexp
	redirects    []siteconfig.RedirectRule
	checkAnchors bool
	validated    *linkSet
	warnings     *warningList
}

// ClientRouter selects the HTTP client appropriate for a host
type ClientRouter interface {
	ClientFor(host string) httpclient.Client
}

// linkSet holds link destinations that have been successfully validated
// used to avoid redundant checks & HTTP Status 429
type linkSet struct {
	set map[string]struct{}
	mux sync.RWMutex
}

func (l *linkSet) exist(dest string) bool {
	l.mux.RLock()
	defer l.mux.RUnlock()
	_, ok := l.set[dest]
	return ok
}

func (l *linkSet) add(dest string) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.set[dest] = struct{}{}
}

type warningList struct {
	list []string
	mux  sync.Mutex
}

func (w *warningList) add(warning string) {
	w.mux.Lock()
	defer w.mux.Unlock()
	w.list = append(w.list, warning)
}

func (w *warningList) all() []string {
	w.mux.Lock()
	defer w.mux.Unlock()
	return append([]string{}, w.list...)
}

// NewValidatorWorker creates a worker from the site link-check configuration
func NewValidatorWorker(clients ClientRouter, cfg *siteconfig.Config) (*ValidatorWorker, error) {
	if clients == nil {
		return nil, fmt.Errorf("clients is nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("site configuration is nil")
	}
	ignore, err := cfg.Linkcheck.CompileIgnore()
	if err != nil {
		return nil, err
	}
	redirects, err := cfg.Linkcheck.CompileAllowedRedirects()
	if err != nil {
		return nil, err
	}
	return &ValidatorWorker{
		clients:      clients,
		ignore:       ignore,
		redirects:    redirects,
		checkAnchors: cfg.Linkcheck.Anchors,
		validated:    &linkSet{set: map[string]struct{}{}},
		warnings:     &warningList{},
	}, nil
}

// Warnings returns the problems found so far, one message per link
func (v *ValidatorWorker) Warnings() []string {
	return v.warnings.all()
}

// Validate checks that the link destination is reachable. Broken links are
// recorded as warnings, an error is returned only on malformed input.
func (v *ValidatorWorker) Validate(ctx context.Context, linkURL *url.URL, linkDestination, contentSourcePath string) error {
	// ignore sample hosts e.g. localhost
	host := linkURL.Hostname()
	if host == "localhost" || host == "127.0.0.1" || host == "1.2.3.4" || strings.Contains(host, "foo.bar") {
		return nil
	}
	if v.ignored(linkDestination) || v.ignored(linkURL.String()) {
		klog.V(6).Infof("link %s from source %s matches an ignore pattern\n", linkDestination, contentSourcePath)
		return nil
	}
	// check if link URL is already validated
	// unify links destination by excluding query, fragment & user info
	unifiedURL := urls.Unify(linkURL)
	if v.validated.exist(unifiedURL) {
		return nil
	}
	if linkURL.Host == "" || strings.ContainsAny(linkURL.Host, " ") {
		return fmt.Errorf("invalid URL in link %s from source %s", linkDestination, contentSourcePath)
	}
	client := v.clients.ClientFor(host)
	absLinkDestination := linkURL.String()
	method := http.MethodHead
	if v.checkAnchors && linkURL.Fragment != "" {
		// the response body is needed to look for the anchor
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, absLinkDestination, nil)
	if err != nil {
		return fmt.Errorf("failed to prepare %s validation request: %v", method, err)
	}
	resp, err := doValidation(req, client)
	if err != nil {
		v.warn("failed to validate absolute link for %s from source %s: %v",
			linkDestination, contentSourcePath, err)
	} else if resp.StatusCode >= 400 && resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusUnauthorized {
		// on error status code different from authorization errors
		// retry GET
		if req, err = http.NewRequestWithContext(ctx, http.MethodGet, absLinkDestination, nil); err != nil {
			return fmt.Errorf("failed to prepare GET validation request: %v", err)
		}
		if resp, err = doValidation(req, client); err != nil {
			v.warn("failed to validate absolute link for %s from source %s: %v",
				linkDestination, contentSourcePath, err)
		} else if resp.StatusCode >= 400 && resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusUnauthorized {
			v.warn("failed to validate absolute link for %s from source %s: %v",
				linkDestination, contentSourcePath, fmt.Errorf("HTTP Status %s", resp.Status))
		}
	}
	if resp != nil && err == nil {
		// error statuses are already reported above, do not warn twice
		if resp.StatusCode < 400 {
			v.verifyRedirect(resp, absLinkDestination, contentSourcePath)
		}
		if method == http.MethodGet && resp.StatusCode == http.StatusOK {
			v.verifyAnchor(resp, linkURL.Fragment, linkDestination, contentSourcePath)
		} else if resp.Body != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
	}
	v.validated.add(unifiedURL)
	return nil
}

// verifyRedirect checks a followed redirect against the allowlist
func (v *ValidatorWorker) verifyRedirect(resp *http.Response, absLinkDestination, contentSourcePath string) {
	if resp.Request == nil || resp.Request.URL == nil {
		return
	}
	finalURL := resp.Request.URL.String()
	if finalURL == absLinkDestination {
		return
	}
	for _, rule := range v.redirects {
		if rule.From.MatchString(absLinkDestination) && rule.To.MatchString(finalURL) {
			klog.V(6).Infof("expected redirect %s -> %s\n", absLinkDestination, finalURL)
			return
		}
	}
	v.warn("link %s from source %s redirects to %s", absLinkDestination, contentSourcePath, finalURL)
}

// verifyAnchor looks for the URL fragment in the response body
func (v *ValidatorWorker) verifyAnchor(resp *http.Response, fragment, linkDestination, contentSourcePath string) {
	if fragment == "" || resp.Body == nil {
		return
	}
	defer resp.Body.Close()
	if hasAnchor(resp.Body, fragment) {
		return
	}
	v.warn("anchor #%s not found in %s from source %s", fragment, linkDestination, contentSourcePath)
}

func (v *ValidatorWorker) ignored(linkDestination string) bool {
	for _, rgx := range v.ignore {
		if rgx.MatchString(linkDestination) {
			return true
		}
	}
	return false
}

func (v *ValidatorWorker) warn(format string, args ...interface{}) {
	warning := fmt.Sprintf(format, args...)
	klog.Warningf("%s\n", warning)
	v.warnings.add(warning)
}

// doValidation performs several attempts to execute the http request if the
// http status code is 429
func doValidation(req *http.Request, client httpclient.Client) (*http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	attempts := 0
	for resp.StatusCode == http.StatusTooManyRequests && attempts < len(retryIntervals) {
		klog.V(6).Infof("retrying request to %s after %d seconds\n", req.URL, retryIntervals[attempts])
		time.Sleep(time.Duration(retryIntervals[attempts]) * time.Second)
		if resp.Body != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		if resp, err = client.Do(req); err != nil {
			return nil, err
		}
		attempts++
	}
	return resp, err
}

// hasAnchor reports whether the HTML document has an element with the given
// id or name attribute
func hasAnchor(body io.Reader, fragment string) bool {
	tokenizer := html.NewTokenizer(body)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			for {
				key, value, more := tokenizer.TagAttr()
				if (string(key) == "id" || string(key) == "name") && string(value) == fragment {
					return true
				}
				if !more {
					break
				}
			}
		}
	}
}

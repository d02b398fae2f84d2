// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package linkcheck

import (
	"context"
	"net/url"
	"sync"

	"github.com/nomadic-labs/docsite/pkg/jobs"
	"github.com/nomadic-labs/docsite/pkg/siteconfig"
	"k8s.io/klog/v2"
)

// Validator validates the links URLs
type Validator interface {
	// ValidateLink checks if the link URL is available in a separate goroutine
	// returns true if the task was added for processing, false if it was skipped
	ValidateLink(linkURL *url.URL, linkDestination, contentSourcePath string) bool
}

type validator struct {
	*ValidatorWorker
	queue *jobs.JobQueue
}

// New creates a new Validator backed by a worker queue
func New(workerCount int, failFast bool, wg *sync.WaitGroup, clients ClientRouter, cfg *siteconfig.Config) (Validator, *ValidatorWorker, jobs.QueueController, error) {
	vWorker, err := NewValidatorWorker(clients, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	queue, err := jobs.NewJobQueue("Validator", workerCount, failFast, wg)
	if err != nil {
		return nil, nil, nil, err
	}
	v := &validator{
		vWorker,
		queue,
	}
	return v, vWorker, queue, nil
}

func (v *validator) ValidateLink(linkURL *url.URL, linkDestination, contentSourcePath string) bool {
	task := &validationTask{
		worker:            v.ValidatorWorker,
		linkURL:           linkURL,
		linkDestination:   linkDestination,
		contentSourcePath: contentSourcePath,
	}
	added := v.queue.AddTask(task)
	if !added {
		klog.Warningf("link validation skipped for %s from source %s\n", linkDestination, contentSourcePath)
	}
	return added
}

// validationTask checks one link destination through its worker
type validationTask struct {
	worker            *ValidatorWorker
	linkURL           *url.URL
	linkDestination   string
	contentSourcePath string
}

// Run implements jobs.Task
func (t *validationTask) Run(ctx context.Context) error {
	return t.worker.Validate(ctx, t.linkURL, t.linkDestination, t.contentSourcePath)
}

// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingTask struct {
	name    string
	counter *int32
	fail    bool
	delay   time.Duration
}

func (c *countingTask) Run(_ context.Context) error {
	atomic.AddInt32(c.counter, 1)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	if c.fail {
		return errors.New(c.name)
	}
	return nil
}

func TestNewJobQueue(t *testing.T) {
	wg := &sync.WaitGroup{}
	testCases := []struct {
		name    string
		size    int
		wg      *sync.WaitGroup
		wantErr string
	}{
		{"valid", 2, wg, ""},
		{"zero workers", 0, wg, "invalid workers size"},
		{"too many workers", 101, wg, "invalid workers size"},
		{"nil wait group", 2, nil, "wait group is nil"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jq, err := NewJobQueue("Test", tc.size, false, tc.wg)
			if tc.wantErr != "" {
				assert.Nil(t, jq)
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, jq)
		})
	}
}

func TestJobQueueProcessing(t *testing.T) {
	testCases := []struct {
		name          string
		tasks         []string
		workers       int
		failFast      bool
		failOn        string
		expectedErrs  int
		expectedCalls int32
	}{
		{
			name:          "runs all tasks",
			tasks:         []string{"a", "b", "c", "d"},
			workers:       2,
			expectedCalls: 4,
		},
		{
			name:         "collects errors fault tolerant",
			tasks:        []string{"a", "boom", "c"},
			workers:      1,
			failOn:       "boom",
			expectedErrs: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			wg := &sync.WaitGroup{}
			var calls int32
			jq, err := NewJobQueue("Test", tc.workers, tc.failFast, wg)
			assert.NoError(t, err)
			jq.Start(ctx)
			for _, name := range tc.tasks {
				task := &countingTask{name: name, counter: &calls, fail: name == tc.failOn}
				assert.True(t, jq.AddTask(task))
			}
			wg.Wait()
			jq.Stop()
			if tc.expectedCalls > 0 {
				assert.Equal(t, tc.expectedCalls, atomic.LoadInt32(&calls))
			}
			assert.Equal(t, len(tc.tasks), jq.GetProcessedTasksCount())
			if tc.expectedErrs > 0 {
				assert.NotNil(t, jq.GetErrorList())
				assert.Len(t, jq.GetErrorList().Errors, tc.expectedErrs)
			} else {
				assert.Nil(t, jq.GetErrorList())
			}
		})
	}
}

func TestJobQueueStopSkipsNewTasks(t *testing.T) {
	ctx := context.Background()
	wg := &sync.WaitGroup{}
	var calls int32
	jq, err := NewJobQueue("Test", 1, false, wg)
	assert.NoError(t, err)
	jq.Start(ctx)
	assert.True(t, jq.AddTask(&countingTask{name: "a", counter: &calls}))
	wg.Wait()
	jq.Stop()
	assert.False(t, jq.AddTask(&countingTask{name: "b", counter: &calls}))
	assert.Equal(t, 1, jq.GetProcessedTasksCount())
	assert.Equal(t, 0, jq.GetWaitingTasksCount())
}

func TestJobQueueSkipsNilTasks(t *testing.T) {
	wg := &sync.WaitGroup{}
	jq, err := NewJobQueue("Test", 1, false, wg)
	assert.NoError(t, err)
	assert.False(t, jq.AddTask(nil))
}

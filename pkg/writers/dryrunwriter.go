// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package writers

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// DryRunWriter is the functional interface for working with dry run writers
type DryRunWriter interface {
	// GetWriter creates writers projecting into the same backend
	// but for different roots (e.g. for assets and docs)
	GetWriter(root string) Writer
	// Flush wraps up dry-run writing and flushes the projected
	// file hierarchy to the underlying writer (e.g. os.Stdout)
	Flush() bool
}

type dryRunWriter struct {
	out   io.Writer
	files []string
	mux   sync.Mutex
	t1    time.Time
}

type dryRunProjection struct {
	root string
	d    *dryRunWriter
}

// NewDryRunWritersFactory creates a factory for writers projecting
// writes to a common output instead of performing them
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		out:   w,
		files: []string{},
		t1:    time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &dryRunProjection{
		root: root,
		d:    d,
	}
}

func (w *dryRunProjection) Write(name, path string, blob []byte) error {
	w.d.mux.Lock()
	defer w.d.mux.Unlock()
	w.d.files = append(w.d.files, fmt.Sprintf("%s/%s/%s (%d bytes)", w.root, path, name, len(blob)))
	return nil
}

// Flush formats and writes the dry-run result to the underlying writer
func (d *dryRunWriter) Flush() bool {
	d.mux.Lock()
	defer d.mux.Unlock()
	sort.Strings(d.files)
	for _, f := range d.files {
		if _, err := fmt.Fprintln(d.out, f); err != nil {
			return false
		}
	}
	elapsedTime := time.Since(d.t1)
	_, err := fmt.Fprintf(d.out, "\nProjection finished in %f seconds\n", elapsedTime.Seconds())
	return err == nil
}

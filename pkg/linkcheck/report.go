// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package linkcheck

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Report summarizes a link-check run
type Report struct {
	// RunID identifies the run in logs and archived reports
	RunID string
	// Checked is the number of processed link destinations
	Checked int
	// Warnings are the problems found, one message per link
	Warnings []string
}

// NewReport assembles a run report with a generated run id
func NewReport(checked int, warnings []string) *Report {
	return &Report{
		RunID:    uuid.New().String(),
		Checked:  checked,
		Warnings: warnings,
	}
}

// Ok reports whether the run found no problems
func (r *Report) Ok() bool {
	return len(r.Warnings) == 0
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "link check %s: %d links checked, %d problems\n", r.RunID, r.Checked, len(r.Warnings))
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  %s\n", w)
	}
	return b.String()
}

// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package writers

import (
	"fmt"
	"os"
	"path/filepath"
)

// FSWriter is an implementation of Writer interface for writing blobs to the file system
type FSWriter struct {
	Root string
}

func (f *FSWriter) Write(name, path string, blob []byte) error {
	p := filepath.Join(f.Root, path)
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}
	filePath := filepath.Join(p, name)
	if err := os.WriteFile(filePath, blob, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", filePath, err)
	}
	return nil
}

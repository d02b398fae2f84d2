// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package writers

// Writer writes blobs with name to a path in a backend
type Writer interface {
	Write(name, path string, blob []byte) error
}

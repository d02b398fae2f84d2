// SPDX-FileCopyrightText: 2023 Nomadic Labs <contact@nomadic-labs.com>
//
// SPDX-License-Identifier: MIT

package httpclient

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import "net/http"

//counterfeiter:generate . Client
type Client interface {
	Do(req *http.Request) (resp *http.Response, err error)
}

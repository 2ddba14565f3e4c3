// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

var (
	errNoHTTPAddress = errors.New("no HTTP address configured")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when there is no HTTP
	// handler or listen address to build a server from.
	errNoServersAreCreated = errors.New("no servers are created")

	// errNoServerToRun is returned by run on a server value that was not
	// built by NewServer.
	errNoServerToRun = errors.New("no servers to run")
)

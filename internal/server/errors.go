// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is a fatal startup condition: the configuration
// yielded no transport server to run.
var errNoServersAreCreated = errors.New("no servers are created")
